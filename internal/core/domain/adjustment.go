package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceIndexEntry is the reduced best-known price information for one
// item code across every coupon. Rebuilt from scratch on every matching
// run and never persisted.
type PriceIndexEntry struct {
	Price          decimal.NullDecimal // Lowest known definite sale price, if any
	Discount       decimal.NullDecimal // Largest known discount amount, if any
	SourceCouponID string              // Coupon that supplied the current best price (or seeded the entry)
	ValidUntil     Date
	Description    string
}

// ClaimKey identifies one adjustment opportunity for claim tracking.
// Usable directly as a map key.
type ClaimKey struct {
	ReceiptID string `json:"receiptID"`
	ItemCode  string `json:"itemCode"`
	CouponID  string `json:"couponID"`
}

// Adjustment is one price-adjustment opportunity: a purchase line item
// matched against the price index under the eligibility window policy.
// Immutable once produced; Claimed/ClaimedAt are an overlay merged in
// by the listing layer, not matcher state.
type Adjustment struct {
	ItemCode            string              `json:"itemCode"`
	Description         string              `json:"description"`
	AmountPaid          decimal.Decimal     `json:"amountPaid"`
	CurrentPrice        decimal.NullDecimal `json:"currentPrice"`     // Absent for discount-only opportunities
	AdjustmentAmount    decimal.Decimal     `json:"adjustmentAmount"` // Exact difference, or the discount as a best-case estimate
	DiscountAmount      decimal.NullDecimal `json:"discountAmount"`
	IsDiscountOnly      bool                `json:"isDiscountOnly"`
	PurchaseDate        Date                `json:"purchaseDate"`
	DaysBeforePromotion int                 `json:"daysBeforePromotion"`
	PromotionStartDate  Date                `json:"promotionStartDate"`
	AdjustmentDeadline  Date                `json:"adjustmentDeadline"`
	PromotionValidUntil Date                `json:"promotionValidUntil"`
	Eligible            bool                `json:"eligible"`
	ReceiptID           string              `json:"receiptID"`
	CouponID            string              `json:"couponID"`

	Claimed   bool       `json:"claimed"`
	ClaimedAt *time.Time `json:"claimedAt,omitempty"`
}

// Key returns the composite claim key for this opportunity.
func (a Adjustment) Key() ClaimKey {
	return ClaimKey{ReceiptID: a.ReceiptID, ItemCode: a.ItemCode, CouponID: a.CouponID}
}

// AdjustmentStats summarises a set of opportunities.
type AdjustmentStats struct {
	Total            int             `json:"total"`
	Eligible         int             `json:"eligible"`
	Expired          int             `json:"expired"`
	TotalSavings     decimal.Decimal `json:"totalSavings"`     // Sum over eligible opportunities only
	PotentialSavings decimal.Decimal `json:"potentialSavings"` // Sum over all opportunities
}

// AdjustmentGroups partitions opportunities by eligibility for display.
type AdjustmentGroups struct {
	Eligible []Adjustment `json:"eligible"`
	Expired  []Adjustment `json:"expired"`
}
