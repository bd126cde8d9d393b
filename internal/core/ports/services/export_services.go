package services

import (
	"context"

	"github.com/PriceTrackr/price_tracker_app/internal/dto"
)

// ExportSvcFacade dumps and restores a user's data as one JSON bundle.
type ExportSvcFacade interface {
	// Export collects the user's receipts, the coupon feed, claims and
	// settings into a bundle.
	Export(ctx context.Context, userID string) (*dto.ExportBundle, error)

	// Import restores a previously exported bundle for the user.
	Import(ctx context.Context, userID string, bundle dto.ExportBundle) error
}
