package conversation

import "context"

// Repository exposes data access for conversations and their messages.
//
// Compound writes (delete cascade, user+assistant pair, conversation with
// first exchange) must be atomic: either every row lands or none does.
type Repository interface {
	// List returns all conversations with their messages, ordered by
	// updated_at descending.
	List(ctx context.Context) ([]*Conversation, error)
	// FindByID returns one conversation with ordered messages, or
	// ErrNotFound.
	FindByID(ctx context.Context, id uint) (*Conversation, error)
	// Create inserts a new empty conversation and fills in the assigned
	// id and timestamps.
	Create(ctx context.Context, conv *Conversation) error
	// Delete removes the conversation's messages and then the
	// conversation itself, returning the deleted record.
	Delete(ctx context.Context, id uint) (*Conversation, error)
	// AppendExchange inserts the user and assistant messages under an
	// existing conversation and refreshes its updated_at, atomically.
	AppendExchange(ctx context.Context, conversationID uint, user, assistant *Message) error
	// CreateWithExchange inserts a new conversation together with its
	// first user and assistant messages, atomically.
	CreateWithExchange(ctx context.Context, conv *Conversation, user, assistant *Message) error
}
