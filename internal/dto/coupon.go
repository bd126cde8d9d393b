package dto

import (
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CouponItemRequest is one promoted item on an uploaded coupon.
// SalePrice and DiscountAmount are pointers so "absent" stays distinct
// from an explicit zero; at least one must be positive.
type CouponItemRequest struct {
	ItemCode       string           `json:"itemCode" binding:"required,min=4"`
	Description    string           `json:"description"`
	SalePrice      *decimal.Decimal `json:"salePrice"`
	DiscountAmount *decimal.Decimal `json:"discountAmount"`
}

// CreateCouponRequest defines the data needed to store a coupon.
type CreateCouponRequest struct {
	ValidFrom  string              `json:"validFrom" binding:"required,dateonly"`
	ValidUntil string              `json:"validUntil" binding:"required,dateonly"`
	Source     string              `json:"source"`
	RawText    string              `json:"rawText"`
	Items      []CouponItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CouponResponse defines the data returned for a coupon.
type CouponResponse struct {
	CouponID   string              `json:"couponID"`
	Source     string              `json:"source"`
	ValidFrom  domain.Date         `json:"validFrom"`
	ValidUntil domain.Date         `json:"validUntil"`
	Items      []domain.CouponItem `json:"items"`
}

// ToCouponResponse converts a domain.Coupon to CouponResponse DTO
func ToCouponResponse(coupon *domain.Coupon) CouponResponse {
	return CouponResponse{
		CouponID:   coupon.CouponID,
		Source:     coupon.Source,
		ValidFrom:  coupon.ValidFrom,
		ValidUntil: coupon.ValidUntil,
		Items:      coupon.Items,
	}
}

// ToListCouponResponse converts a slice of domain.Coupon to response DTOs
func ToListCouponResponse(coupons []domain.Coupon) []CouponResponse {
	res := make([]CouponResponse, len(coupons))
	for i := range coupons {
		res[i] = ToCouponResponse(&coupons[i])
	}
	return res
}
