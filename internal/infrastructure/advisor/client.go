package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"careerchat-api/internal/config"
	"careerchat-api/internal/domain/advisor"
	"careerchat-api/internal/infrastructure/metrics"
)

const systemPrompt = `You are an expert career counsellor.
- Always provide concise, actionable, and practical advice.
- Focus on clear next steps (skills to learn, projects to do, resources to explore).
- Never drift into unrelated topics - you are ONLY a career advisor.
- Adapt advice based on the user's goals, background, and challenges.
- If user's input is vague, ask clarifying questions before giving a plan.`

const titlePromptFormat = `Summarize the following user query into a concise title of 5 words or less. Do not add any prefixes, quotes, or introductory text. Just provide the title. Query: %q`

const (
	replyMaxTokens   = 500
	replyTemperature = 0.7
	titleMaxTokens   = 20
)

// generateContentRequest mirrors the Gemini generateContent body.
type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	MaxOutputTokens int      `json:"maxOutputTokens"`
	Temperature     *float64 `json:"temperature,omitempty"`
}

// generateContentResponse holds the generated text nested under a
// candidate list.
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Client calls the Gemini generateContent API, degrading to the canned
// fallback replies on any failure or when no API key is configured.
type Client struct {
	httpClient *resty.Client
	apiKey     string
	model      string
	log        zerolog.Logger
}

// NewClient creates a Resty-backed Gemini client.
func NewClient(cfg *config.Config, log zerolog.Logger) *Client {
	return &Client{
		httpClient: resty.New().
			SetBaseURL(cfg.GeminiBaseURL).
			SetHeader("Content-Type", "application/json").
			SetTimeout(cfg.AdvisorTimeout),
		apiKey: cfg.GeminiAPIKey,
		model:  cfg.GeminiModel,
		log:    log.With().Str("component", "advisor").Logger(),
	}
}

// GenerateReply produces assistant reply text for the given user message.
func (c *Client) GenerateReply(ctx context.Context, text string) string {
	if c.apiKey == "" {
		metrics.RecordAdvisorCall("reply", metrics.OutcomeFallback)
		return FallbackReply(text)
	}

	temperature := replyTemperature
	reply, err := c.generateContent(ctx, generateContentRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: systemPrompt}, {Text: text}},
		}},
		GenerationConfig: &generationConfig{
			MaxOutputTokens: replyMaxTokens,
			Temperature:     &temperature,
		},
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("reply generation failed, using fallback")
		metrics.RecordAdvisorCall("reply", metrics.OutcomeFallback)
		return FallbackReply(text)
	}

	metrics.RecordAdvisorCall("reply", metrics.OutcomeAPI)
	return reply
}

// GenerateTitle produces a short conversation title from the first user
// message.
func (c *Client) GenerateTitle(ctx context.Context, text string) string {
	if c.apiKey == "" {
		metrics.RecordAdvisorCall("title", metrics.OutcomeFallback)
		return FallbackTitle(text)
	}

	title, err := c.generateContent(ctx, generateContentRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: fmt.Sprintf(titlePromptFormat, text)}},
		}},
		GenerationConfig: &generationConfig{
			MaxOutputTokens: titleMaxTokens,
		},
	})
	if err != nil {
		c.log.Warn().Err(err).Msg("title generation failed, using fallback")
		metrics.RecordAdvisorCall("title", metrics.OutcomeFallback)
		return FallbackTitle(text)
	}

	metrics.RecordAdvisorCall("title", metrics.OutcomeAPI)
	return strings.TrimSpace(title)
}

func (c *Client) generateContent(ctx context.Context, req generateContentRequest) (string, error) {
	var result generateContentResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", c.apiKey).
		SetBody(req).
		SetResult(&result).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("gemini api error: %s", resp.Status())
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini response has no candidates")
	}
	text := result.Candidates[0].Content.Parts[0].Text
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini response text is empty")
	}
	return text, nil
}

// Ensure interface compliance.
var _ advisor.Generator = (*Client)(nil)
