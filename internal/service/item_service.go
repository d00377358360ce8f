package service

import (
	"context"
	"errors"
	"strings"

	"github.com/oldsell/oldsell-backend/internal/model"
	"github.com/oldsell/oldsell-backend/internal/repository"
	"gorm.io/gorm"
)

type ItemService interface {
	Create(ctx context.Context, sellerID uint64, title, description string, price float64, currency, location string, imageFilename *string) (*model.Item, error)
	Get(ctx context.Context, id uint64) (*model.Item, error)
	ListOpen(ctx context.Context) ([]model.Item, error)
	ListBySeller(ctx context.Context, sellerID uint64) ([]model.Item, error)
}

type itemService struct {
	repo repository.ItemRepository
}

func NewItemService(repo repository.ItemRepository) ItemService {
	return &itemService{repo: repo}
}

func (s *itemService) Create(ctx context.Context, sellerID uint64, title, description string, price float64, currency, location string, imageFilename *string) (*model.Item, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	location = strings.TrimSpace(location)
	if sellerID == 0 || title == "" || description == "" || location == "" {
		return nil, ErrValidation
	}
	if price < 0 {
		return nil, ErrValidation
	}
	if currency = strings.TrimSpace(currency); currency == "" {
		currency = model.DefaultCurrency
	}

	item := &model.Item{
		Title:         title,
		Description:   description,
		Price:         price,
		Currency:      currency,
		ImageFilename: imageFilename,
		SellerID:      sellerID,
		Location:      location,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, id uint64) (*model.Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *itemService) ListOpen(ctx context.Context) ([]model.Item, error) {
	return s.repo.ListOpen(ctx)
}

func (s *itemService) ListBySeller(ctx context.Context, sellerID uint64) ([]model.Item, error) {
	return s.repo.ListBySeller(ctx, sellerID)
}
