package advisor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careerchat-api/internal/config"
)

func newTestClient(t *testing.T, apiKey, baseURL string) *Client {
	t.Helper()
	return NewClient(&config.Config{
		GeminiAPIKey:   apiKey,
		GeminiModel:    "gemini-1.5-flash",
		GeminiBaseURL:  baseURL,
		AdvisorTimeout: 2 * time.Second,
	}, zerolog.Nop())
}

func geminiTextResponse(text string) string {
	body, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return string(body)
}

func TestGenerateReplyUsesAPIResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1beta/models/gemini-1.5-flash:generateContent", r.URL.Path)
		require.Equal(t, "secret", r.URL.Query().Get("key"))

		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 2)
		assert.Equal(t, systemPrompt, req.Contents[0].Parts[0].Text)
		assert.Equal(t, "I want to learn react", req.Contents[0].Parts[1].Text)
		require.NotNil(t, req.GenerationConfig)
		assert.Equal(t, replyMaxTokens, req.GenerationConfig.MaxOutputTokens)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geminiTextResponse("Focus on React fundamentals first.")))
	}))
	defer server.Close()

	client := newTestClient(t, "secret", server.URL)
	reply := client.GenerateReply(context.Background(), "I want to learn react")
	assert.Equal(t, "Focus on React fundamentals first.", reply)
}

func TestGenerateReplyFallsBackWithoutAPIKey(t *testing.T) {
	client := newTestClient(t, "", "https://generativelanguage.googleapis.com")
	reply := client.GenerateReply(context.Background(), "I want to learn react")
	assert.Equal(t, frontendFallback, reply)
}

func TestGenerateReplyFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(t, "secret", server.URL)
	reply := client.GenerateReply(context.Background(), "machine learning roadmap")
	assert.Equal(t, dataFallback, reply)
}

func TestGenerateReplyFallsBackOnTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := newTestClient(t, "secret", server.URL)
	reply := client.GenerateReply(context.Background(), "what should I do")
	assert.Equal(t, genericFallback, reply)
}

func TestGenerateReplyFallsBackOnEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer server.Close()

	client := newTestClient(t, "secret", server.URL)
	reply := client.GenerateReply(context.Background(), "I want to learn react")
	assert.Equal(t, frontendFallback, reply)
}

func TestGenerateTitleUsesAPIResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateContentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "concise title of 5 words or less")
		require.NotNil(t, req.GenerationConfig)
		assert.Equal(t, titleMaxTokens, req.GenerationConfig.MaxOutputTokens)
		assert.Nil(t, req.GenerationConfig.Temperature)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(geminiTextResponse("Learning React\n")))
	}))
	defer server.Close()

	client := newTestClient(t, "secret", server.URL)
	title := client.GenerateTitle(context.Background(), "I want to learn react and build apps")
	assert.Equal(t, "Learning React", title)
}

func TestGenerateTitleFallsBackToFirstFiveWords(t *testing.T) {
	client := newTestClient(t, "", "https://generativelanguage.googleapis.com")
	title := client.GenerateTitle(context.Background(), "I want to learn react and build apps")
	assert.Equal(t, "I want to learn react", title)
}
