package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Coupon represents a row in the coupons table. The validity window is
// stored as two DATE columns, both inclusive.
type Coupon struct {
	CouponID   string    `db:"coupon_id"`
	Source     string    `db:"source"`
	ValidFrom  time.Time `db:"valid_from"`
	ValidUntil time.Time `db:"valid_until"`
	RawText    string    `db:"raw_text"` // Nullable
	AuditFields
}

// CouponItem represents a row in the coupon_items table. SalePrice and
// DiscountAmount are nullable NUMERIC columns; NullDecimal scans NULL
// as absent rather than zero.
type CouponItem struct {
	CouponID       string              `db:"coupon_id"`
	ItemCode       string              `db:"item_code"`
	Description    string              `db:"description"` // Nullable
	SalePrice      decimal.NullDecimal `db:"sale_price"`
	DiscountAmount decimal.NullDecimal `db:"discount_amount"`
}
