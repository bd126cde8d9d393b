package dto

import (
	"time"

	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
)

// ExportBundle is the full JSON dump of a user's data, also accepted
// back by the import endpoint.
type ExportBundle struct {
	ExportedAt time.Time         `json:"exportedAt"`
	Receipts   []domain.Receipt  `json:"receipts"`
	Coupons    []domain.Coupon   `json:"coupons"`
	Claims     []domain.Claim    `json:"claims"`
	Settings   map[string]string `json:"settings"`
}
