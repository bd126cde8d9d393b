package domain

import "github.com/shopspring/decimal"

// Coupon represents one promotional offer sheet with a validity window.
// Coupons are shared across users; the promo feed is maintained centrally.
type Coupon struct {
	CouponID   string       `json:"couponID"`          // Primary Key (UUID)
	Source     string       `json:"source"`            // e.g. "monthly-feed", "upload"
	ValidFrom  Date         `json:"validFrom"`         // Inclusive start of the promotion window
	ValidUntil Date         `json:"validUntil"`        // Inclusive end of the promotion window
	RawText    string       `json:"rawText,omitempty"` // Original OCR text, when parsed from text
	Items      []CouponItem `json:"items"`
	AuditFields
}

// CouponItem is one promoted item on a coupon. At least one of SalePrice
// or DiscountAmount must be present and positive for the item to take
// part in matching; NullDecimal keeps "absent" distinct from zero.
type CouponItem struct {
	ItemCode       string              `json:"itemCode"`
	Description    string              `json:"description"`
	SalePrice      decimal.NullDecimal `json:"salePrice"`      // Definite promotional price, when known
	DiscountAmount decimal.NullDecimal `json:"discountAmount"` // Known discount when the absolute price is not known
}

// HasSalePrice reports whether the item carries a definite positive sale price.
func (i CouponItem) HasSalePrice() bool {
	return i.SalePrice.Valid && i.SalePrice.Decimal.IsPositive()
}

// HasDiscount reports whether the item carries a positive discount amount.
func (i CouponItem) HasDiscount() bool {
	return i.DiscountAmount.Valid && i.DiscountAmount.Decimal.IsPositive()
}
