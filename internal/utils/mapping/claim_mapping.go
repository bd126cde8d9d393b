package mapping

import (
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/PriceTrackr/price_tracker_app/internal/models"
)

// ToModelClaim converts a domain Claim to a model Claim
func ToModelClaim(d domain.Claim) models.Claim {
	return models.Claim{
		UserID:    d.UserID,
		ReceiptID: d.ReceiptID,
		ItemCode:  d.ItemCode,
		CouponID:  d.CouponID,
		Amount:    d.Amount,
		ClaimedAt: d.ClaimedAt,
	}
}

// ToDomainClaim converts a model Claim to a domain Claim
func ToDomainClaim(m models.Claim) domain.Claim {
	return domain.Claim{
		UserID: m.UserID,
		ClaimKey: domain.ClaimKey{
			ReceiptID: m.ReceiptID,
			ItemCode:  m.ItemCode,
			CouponID:  m.CouponID,
		},
		Amount:    m.Amount,
		ClaimedAt: m.ClaimedAt,
	}
}

// ToDomainClaimSlice converts a slice of model Claims to domain Claims
func ToDomainClaimSlice(ms []models.Claim) []domain.Claim {
	ds := make([]domain.Claim, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClaim(m)
	}
	return ds
}
