package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/PriceTrackr/price_tracker_app/internal/apperrors"
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	portsrepo "github.com/PriceTrackr/price_tracker_app/internal/core/ports/repositories"
	"github.com/PriceTrackr/price_tracker_app/internal/models"
	"github.com/PriceTrackr/price_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxClaimRepository struct {
	BaseRepository
}

// newPgxClaimRepository creates a new repository for claimed adjustments.
func newPgxClaimRepository(pool *pgxpool.Pool) portsrepo.ClaimRepositoryFacade {
	return &PgxClaimRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ClaimRepositoryFacade = (*PgxClaimRepository)(nil)

// SaveClaim records a claim; re-claiming the same key updates it.
func (r *PgxClaimRepository) SaveClaim(ctx context.Context, claim domain.Claim) error {
	modelClaim := mapping.ToModelClaim(claim)
	query := `
		INSERT INTO claims (user_id, receipt_id, item_code, coupon_id, amount, claimed_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id, receipt_id, item_code, coupon_id) DO UPDATE SET
			amount = EXCLUDED.amount,
			claimed_at = EXCLUDED.claimed_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelClaim.UserID,
		modelClaim.ReceiptID,
		modelClaim.ItemCode,
		modelClaim.CouponID,
		modelClaim.Amount,
		modelClaim.ClaimedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save claim for receipt %s: %w", modelClaim.ReceiptID, err)
	}
	return nil
}

// FindClaim retrieves a single claim by its composite key.
func (r *PgxClaimRepository) FindClaim(ctx context.Context, userID string, key domain.ClaimKey) (*domain.Claim, error) {
	query := `
		SELECT user_id, receipt_id, item_code, coupon_id, amount, claimed_at
		FROM claims
		WHERE user_id = $1 AND receipt_id = $2 AND item_code = $3 AND coupon_id = $4;
	`
	var modelClaim models.Claim
	err := r.Pool.QueryRow(ctx, query, userID, key.ReceiptID, key.ItemCode, key.CouponID).Scan(
		&modelClaim.UserID,
		&modelClaim.ReceiptID,
		&modelClaim.ItemCode,
		&modelClaim.CouponID,
		&modelClaim.Amount,
		&modelClaim.ClaimedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find claim: %w", err)
	}

	domainClaim := mapping.ToDomainClaim(modelClaim)
	return &domainClaim, nil
}

// ListClaimsByUser retrieves every claim recorded by a user.
func (r *PgxClaimRepository) ListClaimsByUser(ctx context.Context, userID string) ([]domain.Claim, error) {
	query := `
		SELECT user_id, receipt_id, item_code, coupon_id, amount, claimed_at
		FROM claims
		WHERE user_id = $1
		ORDER BY claimed_at, receipt_id, item_code;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query claims: %w", err)
	}
	defer rows.Close()

	modelClaims, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Claim, error) {
		var claim models.Claim
		err := row.Scan(
			&claim.UserID,
			&claim.ReceiptID,
			&claim.ItemCode,
			&claim.CouponID,
			&claim.Amount,
			&claim.ClaimedAt,
		)
		return claim, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan claims: %w", err)
	}

	return mapping.ToDomainClaimSlice(modelClaims), nil
}

// DeleteClaim removes a claim.
func (r *PgxClaimRepository) DeleteClaim(ctx context.Context, userID string, key domain.ClaimKey) error {
	query := `
		DELETE FROM claims
		WHERE user_id = $1 AND receipt_id = $2 AND item_code = $3 AND coupon_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, userID, key.ReceiptID, key.ItemCode, key.CouponID)
	if err != nil {
		return fmt.Errorf("failed to delete claim: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
