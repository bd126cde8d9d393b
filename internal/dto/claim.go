package dto

import (
	"time"

	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClaimRequest marks one adjustment opportunity as claimed.
type ClaimRequest struct {
	ReceiptID string          `json:"receiptID" binding:"required"`
	ItemCode  string          `json:"itemCode" binding:"required"`
	CouponID  string          `json:"couponID" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

// Key returns the composite claim key for the request.
func (r ClaimRequest) Key() domain.ClaimKey {
	return domain.ClaimKey{ReceiptID: r.ReceiptID, ItemCode: r.ItemCode, CouponID: r.CouponID}
}

// UnclaimRequest removes a claim by its composite key.
type UnclaimRequest struct {
	ReceiptID string `json:"receiptID" binding:"required"`
	ItemCode  string `json:"itemCode" binding:"required"`
	CouponID  string `json:"couponID" binding:"required"`
}

// Key returns the composite claim key for the request.
func (r UnclaimRequest) Key() domain.ClaimKey {
	return domain.ClaimKey{ReceiptID: r.ReceiptID, ItemCode: r.ItemCode, CouponID: r.CouponID}
}

// ClaimResponse defines the data returned for a claim.
type ClaimResponse struct {
	ReceiptID string          `json:"receiptID"`
	ItemCode  string          `json:"itemCode"`
	CouponID  string          `json:"couponID"`
	Amount    decimal.Decimal `json:"amount"`
	ClaimedAt time.Time       `json:"claimedAt"`
}

// ToClaimResponse converts a domain.Claim to ClaimResponse DTO
func ToClaimResponse(claim *domain.Claim) ClaimResponse {
	return ClaimResponse{
		ReceiptID: claim.ReceiptID,
		ItemCode:  claim.ItemCode,
		CouponID:  claim.CouponID,
		Amount:    claim.Amount,
		ClaimedAt: claim.ClaimedAt,
	}
}

// ToListClaimResponse converts a slice of domain.Claim to response DTOs
func ToListClaimResponse(claims []domain.Claim) []ClaimResponse {
	res := make([]ClaimResponse, len(claims))
	for i := range claims {
		res[i] = ToClaimResponse(&claims[i])
	}
	return res
}
