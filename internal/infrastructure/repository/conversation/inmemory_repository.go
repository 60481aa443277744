package conversation

import (
	"context"
	"sort"
	"sync"
	"time"

	domain "careerchat-api/internal/domain/conversation"
)

// InMemoryRepository is a thread-safe repository useful for demos/tests.
type InMemoryRepository struct {
	mu            sync.RWMutex
	conversations map[uint]*domain.Conversation
	nextConvID    uint
	nextMsgID     uint
	clock         func() time.Time
}

// NewInMemoryRepository builds an empty in-memory store.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		conversations: make(map[uint]*domain.Conversation),
		nextConvID:    1,
		nextMsgID:     1,
		clock:         time.Now,
	}
}

// SetClock overrides the time source, useful for deterministic tests.
func (r *InMemoryRepository) SetClock(clock func() time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clock = clock
}

func (r *InMemoryRepository) List(ctx context.Context) ([]*domain.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Conversation, 0, len(r.conversations))
	for _, conv := range r.conversations {
		result = append(result, copyConversation(conv))
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].UpdatedAt.Equal(result[j].UpdatedAt) {
			return result[i].UpdatedAt.After(result[j].UpdatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (r *InMemoryRepository) FindByID(ctx context.Context, id uint) (*domain.Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	conv, ok := r.conversations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return copyConversation(conv), nil
}

func (r *InMemoryRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()
	conv.ID = r.nextConvID
	r.nextConvID++
	conv.CreatedAt = now
	conv.UpdatedAt = now
	r.conversations[conv.ID] = copyConversation(conv)
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, id uint) (*domain.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, ok := r.conversations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(r.conversations, id)
	return conv, nil
}

func (r *InMemoryRepository) AppendExchange(ctx context.Context, conversationID uint, user, assistant *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conv, ok := r.conversations[conversationID]
	if !ok {
		return domain.ErrNotFound
	}

	now := r.clock()
	r.stampMessage(user, conversationID, now)
	r.stampMessage(assistant, conversationID, now)
	conv.Messages = append(conv.Messages, *user, *assistant)
	conv.UpdatedAt = now
	return nil
}

func (r *InMemoryRepository) CreateWithExchange(ctx context.Context, conv *domain.Conversation, user, assistant *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock()
	conv.ID = r.nextConvID
	r.nextConvID++
	conv.CreatedAt = now
	conv.UpdatedAt = now
	r.stampMessage(user, conv.ID, now)
	r.stampMessage(assistant, conv.ID, now)
	conv.Messages = []domain.Message{*user, *assistant}
	r.conversations[conv.ID] = copyConversation(conv)
	return nil
}

func (r *InMemoryRepository) stampMessage(msg *domain.Message, conversationID uint, now time.Time) {
	msg.ID = r.nextMsgID
	r.nextMsgID++
	msg.ConversationID = conversationID
	msg.CreatedAt = now
	msg.UpdatedAt = now
}

func copyConversation(conv *domain.Conversation) *domain.Conversation {
	dup := *conv
	dup.Messages = append([]domain.Message(nil), conv.Messages...)
	return &dup
}

// Ensure interface compliance.
var _ domain.Repository = (*InMemoryRepository)(nil)
