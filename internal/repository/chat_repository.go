package repository

import (
	"context"

	"github.com/oldsell/oldsell-backend/internal/model"
	"gorm.io/gorm"
)

type ChatRepository interface {
	CreateMessage(ctx context.Context, msg *model.ChatMessage) error
	// ListBetween returns messages in either direction between the two
	// users, oldest first.
	ListBetween(ctx context.Context, userA, userB uint64) ([]model.ChatMessage, error)
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) CreateMessage(ctx context.Context, msg *model.ChatMessage) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *chatRepository) ListBetween(ctx context.Context, userA, userB uint64) ([]model.ChatMessage, error) {
	var msgs []model.ChatMessage
	if err := r.db.WithContext(ctx).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)",
			userA, userB, userB, userA).
		Order("timestamp ASC, id ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	return msgs, nil
}
