package dto

import (
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReceiptItemRequest is one line item on an uploaded receipt.
type ReceiptItemRequest struct {
	ItemCode    string          `json:"itemCode" binding:"required,min=4"`
	Description string          `json:"description"`
	FinalPrice  decimal.Decimal `json:"finalPrice"`
	Discount    decimal.Decimal `json:"discount"`
	LineNumber  int             `json:"lineNumber"`
}

// CreateReceiptRequest defines the data needed to store a receipt.
type CreateReceiptRequest struct {
	PurchaseDate string               `json:"purchaseDate" binding:"required,dateonly"`
	Subtotal     decimal.Decimal      `json:"subtotal"`
	Tax          decimal.Decimal      `json:"tax"`
	Total        decimal.Decimal      `json:"total"`
	RawText      string               `json:"rawText"`
	Items        []ReceiptItemRequest `json:"items" binding:"required,min=1,dive"`
}

// ParseTextRequest carries raw OCR text for the parse endpoints.
type ParseTextRequest struct {
	Text string `json:"text" binding:"required"`
}

// ReceiptResponse defines the data returned for a receipt.
type ReceiptResponse struct {
	ReceiptID    string               `json:"receiptID"`
	PurchaseDate domain.Date          `json:"purchaseDate"`
	Subtotal     decimal.Decimal      `json:"subtotal"`
	Tax          decimal.Decimal      `json:"tax"`
	Total        decimal.Decimal      `json:"total"`
	Items        []domain.ReceiptItem `json:"items"`
}

// ToReceiptResponse converts a domain.Receipt to ReceiptResponse DTO
func ToReceiptResponse(receipt *domain.Receipt) ReceiptResponse {
	return ReceiptResponse{
		ReceiptID:    receipt.ReceiptID,
		PurchaseDate: receipt.PurchaseDate,
		Subtotal:     receipt.Subtotal,
		Tax:          receipt.Tax,
		Total:        receipt.Total,
		Items:        receipt.Items,
	}
}

// ToListReceiptResponse converts a slice of domain.Receipt to response DTOs
func ToListReceiptResponse(receipts []domain.Receipt) []ReceiptResponse {
	res := make([]ReceiptResponse, len(receipts))
	for i := range receipts {
		res[i] = ToReceiptResponse(&receipts[i])
	}
	return res
}
