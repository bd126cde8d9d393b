package services

import (
	"context"

	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
)

// ClaimSvcFacade manages the claimed/unclaimed overlay on adjustment
// opportunities.
type ClaimSvcFacade interface {
	// MarkClaimed records that the user collected an adjustment.
	MarkClaimed(ctx context.Context, userID string, req dto.ClaimRequest) (*domain.Claim, error)

	// Unclaim removes a recorded claim.
	Unclaim(ctx context.Context, userID string, key domain.ClaimKey) error

	// ListClaims retrieves every claim the user has recorded.
	ListClaims(ctx context.Context, userID string) ([]domain.Claim, error)
}
