package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/oldsell/oldsell-backend/internal/model"
	"github.com/oldsell/oldsell-backend/internal/paytm"
	"github.com/oldsell/oldsell-backend/internal/repository"
	"gorm.io/gorm"
)

// StatusSuccess is the gateway's sentinel for a completed transaction.
const StatusSuccess = "TXN_SUCCESS"

type PaymentService interface {
	// MintOrderID encodes the item id as the last underscore-separated
	// segment of the order id; ParseOrderID is its inverse.
	MintOrderID(itemID uint64) string
	ParseOrderID(orderID string) (uint64, error)

	Checksum(orderID, txnAmount string) (string, error)
	Verify(params map[string]string, checksum string) bool

	// CompleteOrder marks the item referenced by the order id as sold.
	// Re-completing an already-sold item rewrites the same value.
	CompleteOrder(ctx context.Context, orderID string) (*model.Item, error)
}

type paymentService struct {
	itemRepo    repository.ItemRepository
	merchantID  string
	merchantKey string
}

func NewPaymentService(itemRepo repository.ItemRepository, merchantID, merchantKey string) PaymentService {
	return &paymentService{itemRepo: itemRepo, merchantID: merchantID, merchantKey: merchantKey}
}

func (s *paymentService) MintOrderID(itemID uint64) string {
	return fmt.Sprintf("ORDER_%s_%d", uuid.NewString(), itemID)
}

func (s *paymentService) ParseOrderID(orderID string) (uint64, error) {
	idx := strings.LastIndex(orderID, "_")
	if idx < 0 {
		return 0, ErrValidation
	}
	itemID, err := strconv.ParseUint(orderID[idx+1:], 10, 64)
	if err != nil {
		return 0, ErrValidation
	}
	return itemID, nil
}

func (s *paymentService) Checksum(orderID, txnAmount string) (string, error) {
	params := map[string]string{
		"MID":        s.merchantID,
		"ORDERID":    orderID,
		"TXN_AMOUNT": txnAmount,
	}
	return paytm.GenerateChecksum(params, s.merchantKey)
}

func (s *paymentService) Verify(params map[string]string, checksum string) bool {
	return paytm.VerifyChecksum(params, s.merchantKey, checksum)
}

func (s *paymentService) CompleteOrder(ctx context.Context, orderID string) (*model.Item, error) {
	itemID, err := s.ParseOrderID(orderID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := s.itemRepo.MarkSold(ctx, item.ID); err != nil {
		return nil, err
	}
	item.IsSold = true
	return item, nil
}
