package repository

import (
	"context"

	"github.com/oldsell/oldsell-backend/internal/model"
	"gorm.io/gorm"
)

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, id uint64) (*model.Item, error)
	ListOpen(ctx context.Context) ([]model.Item, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.Item, error)
	MarkSold(ctx context.Context, id uint64) error
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id uint64) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) ListOpen(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Where("is_sold = ?", false).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).
		Where("seller_id = ?", sellerID).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// MarkSold flips is_sold one way only; re-marking a sold item is a no-op
// that rewrites the same value.
func (r *itemRepository) MarkSold(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&model.Item{}).
		Where("id = ?", id).
		Update("is_sold", true).Error
}
