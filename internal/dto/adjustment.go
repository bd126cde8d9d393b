package dto

import (
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Adjustment list sort orders.
const (
	SortByAmount = "amount"
	SortByDate   = "date"
)

// Adjustment list status filters.
const (
	StatusAll      = "all"
	StatusEligible = "eligible"
	StatusExpired  = "expired"
)

// ListAdjustmentsParams defines query parameters for listing adjustment
// opportunities.
type ListAdjustmentsParams struct {
	Sort           string `form:"sort,default=amount" binding:"omitempty,oneof=amount date"`
	Status         string `form:"status,default=all" binding:"omitempty,oneof=all eligible expired"`
	IncludeClaimed bool   `form:"includeClaimed,default=true"`
}

// ListAdjustmentsResponse wraps the recalculated opportunity list and
// its summary statistics.
type ListAdjustmentsResponse struct {
	Adjustments []domain.Adjustment    `json:"adjustments"`
	Stats       domain.AdjustmentStats `json:"stats"`
}

// AdjustmentSummaryResponse is the dashboard summary: matching stats
// plus record counts and the lifetime total of claimed adjustments.
type AdjustmentSummaryResponse struct {
	Stats           domain.AdjustmentStats `json:"stats"`
	ReceiptCount    int                    `json:"receiptCount"`
	CouponCount     int                    `json:"couponCount"`
	ItemCount       int                    `json:"itemCount"`
	LifetimeClaimed decimal.Decimal        `json:"lifetimeClaimed"`
}
