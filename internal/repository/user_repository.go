package repository

import (
	"context"

	"github.com/oldsell/oldsell-backend/internal/model"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint64) (*model.User, error)
	// FindByIdentifier matches username, email, or phone.
	FindByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	// FindByAnyIdentity returns the first user holding any of the three
	// identity fields, used for the pre-registration duplicate check.
	FindByAnyIdentity(ctx context.Context, username, email, phone string) (*model.User, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("username = ? OR email = ? OR phone = ?", identifier, identifier, identifier).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByAnyIdentity(ctx context.Context, username, email, phone string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("username = ? OR email = ? OR phone = ?", username, email, phone).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
