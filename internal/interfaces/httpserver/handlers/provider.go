package handlers

import (
	"careerchat-api/internal/config"
	domain "careerchat-api/internal/domain/conversation"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Conversation *ConversationHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(cfg *config.Config, conversationService domain.Service) *Provider {
	return &Provider{
		Conversation: NewConversationHandler(conversationService, cfg.SelectionFallback),
	}
}
