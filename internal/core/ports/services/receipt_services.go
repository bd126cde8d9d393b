package services

import (
	"context"

	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
)

// ReceiptReaderSvc defines read operations for receipt data
type ReceiptReaderSvc interface {
	// GetReceipt retrieves one of the user's receipts.
	GetReceipt(ctx context.Context, userID, receiptID string) (*domain.Receipt, error)

	// ListReceipts retrieves all of the user's receipts.
	ListReceipts(ctx context.Context, userID string) ([]domain.Receipt, error)
}

// ReceiptWriterSvc defines write operations for receipt data
type ReceiptWriterSvc interface {
	// CreateReceipt validates and persists a structured receipt.
	CreateReceipt(ctx context.Context, userID string, req dto.CreateReceiptRequest) (*domain.Receipt, error)

	// ParseReceiptText parses OCR text into an unpersisted receipt preview.
	ParseReceiptText(ctx context.Context, text string) (*domain.Receipt, error)

	// DeleteReceipt removes one of the user's receipts.
	DeleteReceipt(ctx context.Context, userID, receiptID string) error
}

// ReceiptSvcFacade combines all receipt-related service interfaces
type ReceiptSvcFacade interface {
	ReceiptReaderSvc
	ReceiptWriterSvc
}
