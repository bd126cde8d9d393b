package repositories

import (
	"context"

	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
)

// ClaimReader defines read operations for claimed adjustments
type ClaimReader interface {
	// ListClaimsByUser retrieves every claim recorded by a user.
	ListClaimsByUser(ctx context.Context, userID string) ([]domain.Claim, error)

	// FindClaim retrieves a single claim by its composite key.
	FindClaim(ctx context.Context, userID string, key domain.ClaimKey) (*domain.Claim, error)
}

// ClaimWriter defines write operations for claimed adjustments
type ClaimWriter interface {
	// SaveClaim records a claim; saving an existing key updates it.
	SaveClaim(ctx context.Context, claim domain.Claim) error

	// DeleteClaim removes a claim.
	DeleteClaim(ctx context.Context, userID string, key domain.ClaimKey) error
}

// ClaimRepositoryFacade combines all claim-related repository interfaces
type ClaimRepositoryFacade interface {
	ClaimReader
	ClaimWriter
}
