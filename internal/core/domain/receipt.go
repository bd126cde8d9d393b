package domain

import "github.com/shopspring/decimal"

// Receipt represents a single store receipt uploaded by a user.
type Receipt struct {
	ReceiptID    string          `json:"receiptID"`    // Primary Key (UUID)
	UserID       string          `json:"userID"`       // Owning user (Not Null)
	PurchaseDate Date            `json:"purchaseDate"` // Calendar date of the purchase (Not Null)
	Subtotal     decimal.Decimal `json:"subtotal"`
	Tax          decimal.Decimal `json:"tax"`
	Total        decimal.Decimal `json:"total"`
	RawText      string          `json:"rawText,omitempty"` // Original OCR text, when parsed from text
	Items        []ReceiptItem   `json:"items"`
	AuditFields
}

// ReceiptItem is one purchased line item on a receipt.
type ReceiptItem struct {
	ItemCode    string          `json:"itemCode"`    // Join key against coupon items; opaque string
	Description string          `json:"description"` // Nullable free text
	FinalPrice  decimal.Decimal `json:"finalPrice"`  // Amount actually paid, after any on-receipt discount
	Discount    decimal.Decimal `json:"discount"`    // On-receipt discount already applied (negative or zero)
	LineNumber  int             `json:"lineNumber"`  // Position on the receipt, for display
}
