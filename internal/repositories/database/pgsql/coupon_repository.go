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

type PgxCouponRepository struct {
	BaseRepository
}

// newPgxCouponRepository creates a new repository for coupon data.
func newPgxCouponRepository(pool *pgxpool.Pool) portsrepo.CouponRepositoryWithTx {
	return &PgxCouponRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CouponRepositoryWithTx = (*PgxCouponRepository)(nil)

// SaveCoupon inserts a coupon header and its items within a DB transaction.
func (r *PgxCouponRepository) SaveCoupon(ctx context.Context, coupon domain.Coupon) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	modelCoupon := mapping.ToModelCoupon(coupon)
	headerQuery := `
		INSERT INTO coupons (coupon_id, source, valid_from, valid_until, raw_text, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err = tx.Exec(ctx, headerQuery,
		modelCoupon.CouponID,
		modelCoupon.Source,
		modelCoupon.ValidFrom,
		modelCoupon.ValidUntil,
		modelCoupon.RawText,
		modelCoupon.CreatedAt,
		modelCoupon.CreatedBy,
		modelCoupon.LastUpdatedAt,
		modelCoupon.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert coupon %s: %w", modelCoupon.CouponID, err)
	}

	itemQuery := `
		INSERT INTO coupon_items (coupon_id, item_code, description, sale_price, discount_amount)
		VALUES ($1, $2, $3, $4, $5);
	`
	batch := &pgx.Batch{}
	for _, item := range mapping.ToModelCouponItems(coupon) {
		batch.Queue(itemQuery, item.CouponID, item.ItemCode, item.Description, item.SalePrice, item.DiscountAmount)
	}
	br := tx.SendBatch(ctx, batch)
	for range coupon.Items {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert coupon items for %s: %w", modelCoupon.CouponID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close coupon item batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindCouponByID retrieves a coupon with its items.
func (r *PgxCouponRepository) FindCouponByID(ctx context.Context, couponID string) (*domain.Coupon, error) {
	headerQuery := `
		SELECT coupon_id, source, valid_from, valid_until, raw_text, created_at, created_by, last_updated_at, last_updated_by
		FROM coupons
		WHERE coupon_id = $1;
	`
	var modelCoupon models.Coupon
	err := r.Pool.QueryRow(ctx, headerQuery, couponID).Scan(
		&modelCoupon.CouponID,
		&modelCoupon.Source,
		&modelCoupon.ValidFrom,
		&modelCoupon.ValidUntil,
		&modelCoupon.RawText,
		&modelCoupon.CreatedAt,
		&modelCoupon.CreatedBy,
		&modelCoupon.LastUpdatedAt,
		&modelCoupon.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find coupon by id %s: %w", couponID, err)
	}

	items, err := r.itemsForCoupons(ctx, []string{couponID})
	if err != nil {
		return nil, err
	}

	domainCoupon := mapping.ToDomainCoupon(modelCoupon, items[couponID])
	return &domainCoupon, nil
}

// ListCoupons retrieves the full shared coupon set, items included.
func (r *PgxCouponRepository) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	headerQuery := `
		SELECT coupon_id, source, valid_from, valid_until, raw_text, created_at, created_by, last_updated_at, last_updated_by
		FROM coupons
		ORDER BY valid_from, coupon_id;
	`
	rows, err := r.Pool.Query(ctx, headerQuery)
	if err != nil {
		return nil, fmt.Errorf("failed to query coupons: %w", err)
	}
	defer rows.Close()

	modelCoupons, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Coupon, error) {
		var coupon models.Coupon
		err := row.Scan(
			&coupon.CouponID,
			&coupon.Source,
			&coupon.ValidFrom,
			&coupon.ValidUntil,
			&coupon.RawText,
			&coupon.CreatedAt,
			&coupon.CreatedBy,
			&coupon.LastUpdatedAt,
			&coupon.LastUpdatedBy,
		)
		return coupon, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan coupons: %w", err)
	}
	if len(modelCoupons) == 0 {
		return []domain.Coupon{}, nil
	}

	couponIDs := make([]string, len(modelCoupons))
	for i, coupon := range modelCoupons {
		couponIDs[i] = coupon.CouponID
	}
	itemsByCoupon, err := r.itemsForCoupons(ctx, couponIDs)
	if err != nil {
		return nil, err
	}

	domainCoupons := make([]domain.Coupon, len(modelCoupons))
	for i, coupon := range modelCoupons {
		domainCoupons[i] = mapping.ToDomainCoupon(coupon, itemsByCoupon[coupon.CouponID])
	}
	return domainCoupons, nil
}

// DeleteCoupon removes a coupon; items go with it via ON DELETE CASCADE.
func (r *PgxCouponRepository) DeleteCoupon(ctx context.Context, couponID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM coupons WHERE coupon_id = $1;`, couponID)
	if err != nil {
		return fmt.Errorf("failed to delete coupon %s: %w", couponID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// itemsForCoupons loads item rows for a set of coupons, grouped by coupon id.
func (r *PgxCouponRepository) itemsForCoupons(ctx context.Context, couponIDs []string) (map[string][]models.CouponItem, error) {
	itemQuery := `
		SELECT coupon_id, item_code, description, sale_price, discount_amount
		FROM coupon_items
		WHERE coupon_id = ANY($1)
		ORDER BY coupon_id, item_code;
	`
	rows, err := r.Pool.Query(ctx, itemQuery, couponIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query coupon items: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]models.CouponItem, len(couponIDs))
	for rows.Next() {
		var item models.CouponItem
		if err := rows.Scan(&item.CouponID, &item.ItemCode, &item.Description, &item.SalePrice, &item.DiscountAmount); err != nil {
			return nil, fmt.Errorf("failed to scan coupon item: %w", err)
		}
		grouped[item.CouponID] = append(grouped[item.CouponID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read coupon items: %w", err)
	}
	return grouped, nil
}
