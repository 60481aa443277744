package handlers

import (
	"context"

	"careerchat-api/internal/config"
	domain "careerchat-api/internal/domain/conversation"
	conversationrequests "careerchat-api/internal/interfaces/httpserver/requests/conversation"
	conversationresponses "careerchat-api/internal/interfaces/httpserver/responses/conversation"
)

// ConversationHandler invokes domain logic for conversation use cases.
type ConversationHandler struct {
	service           domain.Service
	selectionFallback config.SelectionFallback
}

// NewConversationHandler wires dependencies for conversation routes.
func NewConversationHandler(service domain.Service, selectionFallback config.SelectionFallback) *ConversationHandler {
	return &ConversationHandler{
		service:           service,
		selectionFallback: selectionFallback,
	}
}

// List returns all conversations ordered by recency.
func (h *ConversationHandler) List(ctx context.Context) ([]conversationresponses.ConversationResponse, error) {
	conversations, err := h.service.List(ctx)
	if err != nil {
		return nil, err
	}
	return conversationresponses.NewConversationListResponse(conversations), nil
}

// Get returns one conversation with its ordered messages.
func (h *ConversationHandler) Get(ctx context.Context, id uint) (*conversationresponses.ConversationResponse, error) {
	conv, err := h.service.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := conversationresponses.NewConversationResponse(conv)
	return &resp, nil
}

// Create inserts a new empty conversation.
func (h *ConversationHandler) Create(ctx context.Context, req conversationrequests.CreateConversationRequest) (*conversationresponses.ConversationResponse, error) {
	conv, err := h.service.Create(ctx, req.Title)
	if err != nil {
		return nil, err
	}
	resp := conversationresponses.NewConversationResponse(conv)
	return &resp, nil
}

// Delete removes a conversation and all its messages.
func (h *ConversationHandler) Delete(ctx context.Context, id uint) (*conversationresponses.DeleteConversationResponse, error) {
	conv, err := h.service.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	return &conversationresponses.DeleteConversationResponse{
		Deleted:           conversationresponses.NewConversationResponse(conv),
		SelectionFallback: string(h.selectionFallback),
	}, nil
}

// AddMessage appends a user message and the generated assistant reply.
func (h *ConversationHandler) AddMessage(ctx context.Context, id uint, req conversationrequests.AddMessageRequest) (*conversationresponses.ExchangeResponse, error) {
	user, assistant, err := h.service.AddMessage(ctx, id, req.Content)
	if err != nil {
		return nil, err
	}
	return &conversationresponses.ExchangeResponse{
		UserMessage:      conversationresponses.NewMessageResponse(user),
		AssistantMessage: conversationresponses.NewMessageResponse(assistant),
	}, nil
}

// Start creates a conversation from its first user message.
func (h *ConversationHandler) Start(ctx context.Context, req conversationrequests.StartConversationRequest) (*conversationresponses.StartConversationResponse, error) {
	conv, err := h.service.Start(ctx, req.Content)
	if err != nil {
		return nil, err
	}
	return &conversationresponses.StartConversationResponse{
		ConversationID: conv.ID,
		Conversation:   conversationresponses.NewConversationResponse(conv),
	}, nil
}
