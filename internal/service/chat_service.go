package service

import (
	"context"
	"errors"
	"strings"

	"github.com/oldsell/oldsell-backend/internal/model"
	"github.com/oldsell/oldsell-backend/internal/repository"
	"gorm.io/gorm"
)

type ChatService interface {
	Send(ctx context.Context, fromID, toID uint64, body string) (*model.ChatMessage, error)
	// Conversation is symmetric: (a,b) and (b,a) return the same sequence,
	// oldest message first.
	Conversation(ctx context.Context, userA, userB uint64) ([]model.ChatMessage, error)
}

type chatService struct {
	chatRepo repository.ChatRepository
	userRepo repository.UserRepository
}

func NewChatService(chatRepo repository.ChatRepository, userRepo repository.UserRepository) ChatService {
	return &chatService{chatRepo: chatRepo, userRepo: userRepo}
}

func (s *chatService) Send(ctx context.Context, fromID, toID uint64, body string) (*model.ChatMessage, error) {
	if fromID == 0 || toID == 0 || strings.TrimSpace(body) == "" {
		return nil, ErrValidation
	}
	if _, err := s.userRepo.FindByID(ctx, toID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrValidation
		}
		return nil, err
	}

	msg := &model.ChatMessage{
		FromUserID: fromID,
		ToUserID:   toID,
		Body:       body,
	}
	if err := s.chatRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *chatService) Conversation(ctx context.Context, userA, userB uint64) ([]model.ChatMessage, error) {
	return s.chatRepo.ListBetween(ctx, userA, userB)
}
