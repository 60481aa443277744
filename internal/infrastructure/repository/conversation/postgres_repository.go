package conversation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	domain "careerchat-api/internal/domain/conversation"
	"careerchat-api/internal/infrastructure/database/entities"
)

// messageOrder keeps message history in creation order, ties broken by id.
const messageOrder = "created_at ASC, id ASC"

// PostgresRepository persists conversations via PostgreSQL using GORM.
type PostgresRepository struct {
	db *gorm.DB
}

// NewPostgresRepository creates a repository backed by the provided DB.
func NewPostgresRepository(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all conversations with their messages, most recently
// updated first.
func (r *PostgresRepository) List(ctx context.Context) ([]*domain.Conversation, error) {
	var records []entities.Conversation
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order(messageOrder)
		}).
		Order("updated_at DESC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}

	conversations := make([]*domain.Conversation, 0, len(records))
	for i := range records {
		conversations = append(conversations, records[i].EtoD())
	}
	return conversations, nil
}

// FindByID fetches one conversation with its ordered messages.
func (r *PostgresRepository) FindByID(ctx context.Context, id uint) (*domain.Conversation, error) {
	var record entities.Conversation
	err := r.db.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order(messageOrder)
		}).
		First(&record, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetch conversation %d: %w", id, err)
	}
	return record.EtoD(), nil
}

// Create inserts the conversation record.
func (r *PostgresRepository) Create(ctx context.Context, conv *domain.Conversation) error {
	entity := entities.NewSchemaConversation(conv)
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return fmt.Errorf("create conversation: %w", err)
	}

	conv.ID = entity.ID
	conv.CreatedAt = entity.CreatedAt
	conv.UpdatedAt = entity.UpdatedAt
	return nil
}

// Delete removes the conversation's messages and then the conversation
// itself in a single transaction, returning the deleted record.
func (r *PostgresRepository) Delete(ctx context.Context, id uint) (*domain.Conversation, error) {
	deleted, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("conversation_id = ?", id).Delete(&entities.Message{}).Error; err != nil {
			return fmt.Errorf("delete messages: %w", err)
		}
		if err := tx.Delete(&entities.Conversation{}, id).Error; err != nil {
			return fmt.Errorf("delete conversation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

// AppendExchange inserts the user and assistant messages and refreshes
// the conversation's updated_at, all in one transaction.
func (r *PostgresRepository) AppendExchange(ctx context.Context, conversationID uint, user, assistant *domain.Message) error {
	userEntity := entities.NewSchemaMessage(user)
	userEntity.ConversationID = conversationID
	assistantEntity := entities.NewSchemaMessage(assistant)
	assistantEntity.ConversationID = conversationID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(userEntity).Error; err != nil {
			return fmt.Errorf("insert user message: %w", err)
		}
		if err := tx.Create(assistantEntity).Error; err != nil {
			return fmt.Errorf("insert assistant message: %w", err)
		}
		// Keep updated_at at or after the assistant message so list
		// ordering by recency reflects the append.
		err := tx.Model(&entities.Conversation{}).
			Where("id = ?", conversationID).
			UpdateColumn("updated_at", time.Now().UTC()).Error
		if err != nil {
			return fmt.Errorf("touch conversation: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	*user = *userEntity.EtoD()
	*assistant = *assistantEntity.EtoD()
	return nil
}

// CreateWithExchange inserts a new conversation together with its first
// user and assistant messages in one transaction.
func (r *PostgresRepository) CreateWithExchange(ctx context.Context, conv *domain.Conversation, user, assistant *domain.Message) error {
	convEntity := entities.NewSchemaConversation(conv)
	userEntity := entities.NewSchemaMessage(user)
	assistantEntity := entities.NewSchemaMessage(assistant)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(convEntity).Error; err != nil {
			return fmt.Errorf("create conversation: %w", err)
		}
		userEntity.ConversationID = convEntity.ID
		assistantEntity.ConversationID = convEntity.ID
		if err := tx.Create(userEntity).Error; err != nil {
			return fmt.Errorf("insert user message: %w", err)
		}
		if err := tx.Create(assistantEntity).Error; err != nil {
			return fmt.Errorf("insert assistant message: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	conv.ID = convEntity.ID
	conv.CreatedAt = convEntity.CreatedAt
	conv.UpdatedAt = convEntity.UpdatedAt
	*user = *userEntity.EtoD()
	*assistant = *assistantEntity.EtoD()
	conv.Messages = []domain.Message{*user, *assistant}
	return nil
}

// Ensure interface compliance.
var _ domain.Repository = (*PostgresRepository)(nil)
