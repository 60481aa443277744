package entities

import (
	"time"

	domain "careerchat-api/internal/domain/conversation"
)

// Conversation represents the database schema for conversations.
type Conversation struct {
	ID        uint      `gorm:"primaryKey"`
	Title     *string   `gorm:"type:varchar(256)"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index"`

	Messages []Message `gorm:"foreignKey:ConversationID"`
}

// TableName specifies the table name for Conversation.
func (Conversation) TableName() string {
	return "conversations"
}

// NewSchemaConversation converts a domain conversation into its entity.
func NewSchemaConversation(conv *domain.Conversation) *Conversation {
	return &Conversation{
		ID:    conv.ID,
		Title: conv.Title,
	}
}

// EtoD converts the entity into its domain representation.
func (c *Conversation) EtoD() *domain.Conversation {
	messages := make([]domain.Message, 0, len(c.Messages))
	for i := range c.Messages {
		messages = append(messages, *c.Messages[i].EtoD())
	}
	return &domain.Conversation{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
		Messages:  messages,
	}
}
