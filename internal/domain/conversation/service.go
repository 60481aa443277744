package conversation

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"careerchat-api/internal/domain/advisor"
)

// Service describes the business logic surface for conversation operations.
type Service interface {
	// List returns all conversations ordered by recency.
	List(ctx context.Context) ([]*Conversation, error)
	// Get returns one conversation with ordered messages, or ErrNotFound.
	Get(ctx context.Context, id uint) (*Conversation, error)
	// Create inserts a new empty conversation; a nil title gets
	// DefaultTitle, a provided title must be non-blank.
	Create(ctx context.Context, title *string) (*Conversation, error)
	// Delete removes the conversation and all its messages, returning
	// the deleted record.
	Delete(ctx context.Context, id uint) (*Conversation, error)
	// AddMessage appends a user message and the generated assistant
	// reply to an existing conversation.
	AddMessage(ctx context.Context, id uint, content string) (user, assistant *Message, err error)
	// Start creates a conversation titled from the first message and
	// seeds it with the user message and the generated assistant reply.
	Start(ctx context.Context, content string) (*Conversation, error)
}

type service struct {
	repo      Repository
	generator advisor.Generator
	log       zerolog.Logger
}

// NewService wires the conversation service with its repository and the
// reply generator.
func NewService(repo Repository, generator advisor.Generator, log zerolog.Logger) Service {
	return &service{
		repo:      repo,
		generator: generator,
		log:       log.With().Str("component", "conversation-service").Logger(),
	}
}

func (s *service) List(ctx context.Context) ([]*Conversation, error) {
	conversations, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list conversations")
		return nil, err
	}
	return conversations, nil
}

func (s *service) Get(ctx context.Context, id uint) (*Conversation, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) Create(ctx context.Context, title *string) (*Conversation, error) {
	if title != nil && strings.TrimSpace(*title) == "" {
		return nil, ErrEmptyTitle
	}
	if title == nil {
		placeholder := DefaultTitle
		title = &placeholder
	}

	conv := &Conversation{Title: title}
	if err := s.repo.Create(ctx, conv); err != nil {
		s.log.Error().Err(err).Msg("create conversation")
		return nil, err
	}
	return conv, nil
}

func (s *service) Delete(ctx context.Context, id uint) (*Conversation, error) {
	conv, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info().Uint("conversation_id", id).Msg("deleted conversation")
	return conv, nil
}

func (s *service) AddMessage(ctx context.Context, id uint, content string) (*Message, *Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, nil, ErrEmptyContent
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, nil, err
	}

	// The generator is network bound and never fails, so its result is
	// captured before the transactional write opens.
	reply := s.generator.GenerateReply(ctx, content)

	user := &Message{Role: RoleUser, Content: content}
	assistant := &Message{Role: RoleAssistant, Content: reply}
	if err := s.repo.AppendExchange(ctx, id, user, assistant); err != nil {
		s.log.Error().Err(err).Uint("conversation_id", id).Msg("append exchange")
		return nil, nil, err
	}
	return user, assistant, nil
}

func (s *service) Start(ctx context.Context, content string) (*Conversation, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	title := s.generator.GenerateTitle(ctx, content)
	if strings.TrimSpace(title) == "" {
		title = DefaultTitle
	}
	reply := s.generator.GenerateReply(ctx, content)

	conv := &Conversation{Title: &title}
	user := &Message{Role: RoleUser, Content: content}
	assistant := &Message{Role: RoleAssistant, Content: reply}
	if err := s.repo.CreateWithExchange(ctx, conv, user, assistant); err != nil {
		s.log.Error().Err(err).Msg("start conversation")
		return nil, err
	}
	s.log.Info().Uint("conversation_id", conv.ID).Msg("started conversation")
	return conv, nil
}
