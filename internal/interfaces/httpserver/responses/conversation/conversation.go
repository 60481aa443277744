package conversationresponses

import (
	"time"

	domain "careerchat-api/internal/domain/conversation"
)

// MessageResponse is the wire representation of one conversation turn.
type MessageResponse struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	Role           string    `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ConversationResponse is the wire representation of a conversation with
// its ordered message history.
type ConversationResponse struct {
	ID        uint              `json:"id"`
	Title     *string           `json:"title"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	Messages  []MessageResponse `json:"messages"`
}

// ExchangeResponse carries the user message and the generated assistant
// message appended by a single addMessage call.
type ExchangeResponse struct {
	UserMessage      MessageResponse `json:"user_message"`
	AssistantMessage MessageResponse `json:"assistant_message"`
}

// StartConversationResponse identifies the conversation created by
// startAndSendMessage.
type StartConversationResponse struct {
	ConversationID uint                 `json:"conversation_id"`
	Conversation   ConversationResponse `json:"conversation"`
}

// DeleteConversationResponse returns the deleted record plus the
// configured selection-fallback policy so clients behave consistently.
type DeleteConversationResponse struct {
	Deleted           ConversationResponse `json:"deleted"`
	SelectionFallback string               `json:"selection_fallback"`
}

// ErrorResponse is the structured error body for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewMessageResponse converts a domain message.
func NewMessageResponse(msg *domain.Message) MessageResponse {
	return MessageResponse{
		ID:             msg.ID,
		ConversationID: msg.ConversationID,
		Role:           string(msg.Role),
		Content:        msg.Content,
		CreatedAt:      msg.CreatedAt,
		UpdatedAt:      msg.UpdatedAt,
	}
}

// NewConversationResponse converts a domain conversation.
func NewConversationResponse(conv *domain.Conversation) ConversationResponse {
	messages := make([]MessageResponse, 0, len(conv.Messages))
	for i := range conv.Messages {
		messages = append(messages, NewMessageResponse(&conv.Messages[i]))
	}
	return ConversationResponse{
		ID:        conv.ID,
		Title:     conv.Title,
		CreatedAt: conv.CreatedAt,
		UpdatedAt: conv.UpdatedAt,
		Messages:  messages,
	}
}

// NewConversationListResponse converts a list of domain conversations.
func NewConversationListResponse(conversations []*domain.Conversation) []ConversationResponse {
	result := make([]ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		result = append(result, NewConversationResponse(conv))
	}
	return result
}
