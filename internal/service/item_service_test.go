package service

import (
	"context"
	"testing"

	"github.com/oldsell/oldsell-backend/internal/model"
	"github.com/oldsell/oldsell-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetItem(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(repository.NewItemRepository(db))
	ctx := context.Background()

	item, err := svc.Create(ctx, 1, "Old chair", "Sturdy oak chair", 250, "", "Pune", nil)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCurrency, item.Currency)
	assert.False(t, item.IsSold)

	got, err := svc.Get(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, "Old chair", got.Title)
	assert.Equal(t, uint64(1), got.SellerID)
}

func TestCreateItemValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(repository.NewItemRepository(db))
	ctx := context.Background()

	tests := []struct {
		name     string
		sellerID uint64
		title    string
		desc     string
		price    float64
		location string
	}{
		{"no seller", 0, "t", "d", 1, "l"},
		{"empty title", 1, "", "d", 1, "l"},
		{"empty description", 1, "t", "", 1, "l"},
		{"empty location", 1, "t", "d", 1, ""},
		{"negative price", 1, "t", "d", -5, "l"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.sellerID, tt.title, tt.desc, tt.price, "", tt.location, nil)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestGetItemNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewItemService(repository.NewItemRepository(db))
	_, err := svc.Get(context.Background(), 12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListOpenExcludesSold(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewItemRepository(db)
	svc := NewItemService(repo)
	ctx := context.Background()

	open, err := svc.Create(ctx, 1, "Open item", "d", 10, "", "l", nil)
	require.NoError(t, err)
	sold, err := svc.Create(ctx, 1, "Sold item", "d", 20, "", "l", nil)
	require.NoError(t, err)
	require.NoError(t, repo.MarkSold(ctx, sold.ID))

	items, err := svc.ListOpen(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, open.ID, items[0].ID)
}

func TestListBySellerIncludesSold(t *testing.T) {
	db := newTestDB(t)
	repo := repository.NewItemRepository(db)
	svc := NewItemService(repo)
	ctx := context.Background()

	mine, err := svc.Create(ctx, 1, "Mine", "d", 10, "", "l", nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, "Theirs", "d", 10, "", "l", nil)
	require.NoError(t, err)
	require.NoError(t, repo.MarkSold(ctx, mine.ID))

	items, err := svc.ListBySeller(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, mine.ID, items[0].ID)
	assert.True(t, items[0].IsSold)
}
