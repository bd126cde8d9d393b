package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt represents a row in the receipts table. PurchaseDate is a DATE
// column, carried as midnight UTC.
type Receipt struct {
	ReceiptID    string          `db:"receipt_id"`
	UserID       string          `db:"user_id"`
	PurchaseDate time.Time       `db:"purchase_date"`
	Subtotal     decimal.Decimal `db:"subtotal"`
	Tax          decimal.Decimal `db:"tax"`
	Total        decimal.Decimal `db:"total"`
	RawText      string          `db:"raw_text"` // Nullable
	AuditFields
}

// ReceiptItem represents a row in the receipt_items table.
type ReceiptItem struct {
	ReceiptID   string          `db:"receipt_id"`
	ItemCode    string          `db:"item_code"`
	Description string          `db:"description"` // Nullable
	FinalPrice  decimal.Decimal `db:"final_price"`
	Discount    decimal.Decimal `db:"discount"`
	LineNumber  int             `db:"line_number"`
}
