package conversation

import (
	"errors"
	"time"
)

// Role tags one turn in a conversation.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	// RoleSystem is accepted by the schema but no code path creates it.
	RoleSystem Role = "system"
)

// Valid reports whether the role is one of the enumerated values.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// DefaultTitle is assigned when a conversation is created without one.
const DefaultTitle = "New conversation"

var (
	// ErrNotFound indicates the conversation id does not exist.
	ErrNotFound = errors.New("conversation not found")
	// ErrEmptyTitle indicates a provided title was blank.
	ErrEmptyTitle = errors.New("title must not be empty")
	// ErrEmptyContent indicates a message body was blank.
	ErrEmptyContent = errors.New("message content must not be empty")
)

// Message is one turn in a conversation.
type Message struct {
	ID             uint      `json:"id"`
	ConversationID uint      `json:"conversation_id"`
	Role           Role      `json:"role"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Conversation is a titled, timestamped container of an ordered message
// history. Messages are ordered by creation time ascending, ties broken
// by ascending id.
type Conversation struct {
	ID        uint      `json:"id"`
	Title     *string   `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Messages  []Message `json:"messages"`
}
