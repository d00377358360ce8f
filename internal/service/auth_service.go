package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/oldsell/oldsell-backend/internal/model"
	"github.com/oldsell/oldsell-backend/internal/repository"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(ctx context.Context, username, email, phone, password string) (*model.User, error)
	// Login accepts a username, email, or phone as identifier.
	Login(ctx context.Context, identifier, password string) (*model.User, error)
	GetUser(ctx context.Context, id uint64) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(ctx context.Context, username, email, phone, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if username == "" || email == "" || phone == "" || password == "" {
		return nil, ErrValidation
	}

	existing, err := s.userRepo.FindByAnyIdentity(ctx, username, email, phone)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateIdentity
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		// A racing registration can slip past the pre-check; the unique
		// index rejects it, and the caller should see the same conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, identifier, password string) (*model.User, error) {
	user, err := s.userRepo.FindByIdentifier(ctx, strings.TrimSpace(identifier))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if !CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) GetUser(ctx context.Context, id uint64) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}
