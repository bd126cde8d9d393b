package services

import (
	"context"

	"github.com/PriceTrackr/price_tracker_app/internal/dto"
)

// AdjustmentSvcFacade recalculates price-adjustment opportunities for a
// user from their receipts and the shared coupon feed. Every call runs
// the matcher over fresh inputs; nothing is cached between calls.
type AdjustmentSvcFacade interface {
	// ListAdjustments returns the user's opportunities, claim overlay
	// merged, filtered and sorted per params.
	ListAdjustments(ctx context.Context, userID string, params dto.ListAdjustmentsParams) (*dto.ListAdjustmentsResponse, error)

	// Summary returns dashboard statistics for the user.
	Summary(ctx context.Context, userID string) (*dto.AdjustmentSummaryResponse, error)
}
