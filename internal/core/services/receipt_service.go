package services

import (
	"context"
	"fmt"
	"time"

	"github.com/PriceTrackr/price_tracker_app/internal/apperrors"
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	portsrepo "github.com/PriceTrackr/price_tracker_app/internal/core/ports/repositories"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
	"github.com/PriceTrackr/price_tracker_app/internal/parsing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReceiptService struct {
	receiptRepo portsrepo.ReceiptRepositoryFacade
}

func NewReceiptService(receiptRepo portsrepo.ReceiptRepositoryFacade) *ReceiptService {
	return &ReceiptService{receiptRepo: receiptRepo}
}

func (s *ReceiptService) CreateReceipt(ctx context.Context, userID string, req dto.CreateReceiptRequest) (*domain.Receipt, error) {
	purchaseDate, err := domain.ParseDate(req.PurchaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	now := time.Now()
	receipt := domain.Receipt{
		ReceiptID:    uuid.NewString(),
		UserID:       userID,
		PurchaseDate: purchaseDate,
		Subtotal:     req.Subtotal,
		Tax:          req.Tax,
		Total:        req.Total,
		RawText:      req.RawText,
		Items:        make([]domain.ReceiptItem, len(req.Items)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	for i, item := range req.Items {
		receipt.Items[i] = domain.ReceiptItem{
			ItemCode:    item.ItemCode,
			Description: item.Description,
			FinalPrice:  item.FinalPrice,
			Discount:    item.Discount,
			LineNumber:  item.LineNumber,
		}
	}

	// Derive totals when the client sent only line items.
	if receipt.Total.IsZero() {
		sum := decimal.Zero
		for _, item := range receipt.Items {
			sum = sum.Add(item.FinalPrice)
		}
		receipt.Subtotal = sum
		receipt.Total = sum.Add(receipt.Tax)
	}

	if err := parsing.ValidateReceipt(receipt); err != nil {
		return nil, err
	}

	if err := s.receiptRepo.SaveReceipt(ctx, receipt); err != nil {
		return nil, fmt.Errorf("failed to create receipt in service: %w", err)
	}

	return &receipt, nil
}

func (s *ReceiptService) ParseReceiptText(ctx context.Context, text string) (*domain.Receipt, error) {
	receipt := parsing.ParseReceiptText(text, domain.Today())
	return &receipt, nil
}

func (s *ReceiptService) GetReceipt(ctx context.Context, userID, receiptID string) (*domain.Receipt, error) {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt in service: %w", err)
	}
	if receipt.UserID != userID {
		return nil, apperrors.ErrForbidden
	}
	return receipt, nil
}

func (s *ReceiptService) ListReceipts(ctx context.Context, userID string) ([]domain.Receipt, error) {
	receipts, err := s.receiptRepo.ListReceiptsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts in service: %w", err)
	}
	// Return empty slice if no receipts found, not nil
	if receipts == nil {
		return []domain.Receipt{}, nil
	}
	return receipts, nil
}

func (s *ReceiptService) DeleteReceipt(ctx context.Context, userID, receiptID string) error {
	receipt, err := s.receiptRepo.FindReceiptByID(ctx, receiptID)
	if err != nil {
		return fmt.Errorf("failed to load receipt for delete: %w", err)
	}
	if receipt.UserID != userID {
		return apperrors.ErrForbidden
	}
	if err := s.receiptRepo.DeleteReceipt(ctx, receiptID); err != nil {
		return fmt.Errorf("failed to delete receipt in service: %w", err)
	}
	return nil
}
