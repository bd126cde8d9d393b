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

type PgxSettingRepository struct {
	BaseRepository
}

// newPgxSettingRepository creates a new repository for per-user settings.
func newPgxSettingRepository(pool *pgxpool.Pool) portsrepo.SettingRepositoryFacade {
	return &PgxSettingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.SettingRepositoryFacade = (*PgxSettingRepository)(nil)

// SaveSetting inserts or updates a setting.
func (r *PgxSettingRepository) SaveSetting(ctx context.Context, setting domain.Setting) error {
	modelSetting := mapping.ToModelSetting(setting)
	query := `
		INSERT INTO settings (user_id, key, value, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, key) DO UPDATE SET
			value = EXCLUDED.value,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		modelSetting.UserID,
		modelSetting.Key,
		modelSetting.Value,
		modelSetting.CreatedAt,
		modelSetting.CreatedBy,
		modelSetting.LastUpdatedAt,
		modelSetting.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", modelSetting.Key, err)
	}
	return nil
}

// FindSetting retrieves a single setting; ErrNotFound when unset.
func (r *PgxSettingRepository) FindSetting(ctx context.Context, userID, key string) (*domain.Setting, error) {
	query := `
		SELECT user_id, key, value, created_at, created_by, last_updated_at, last_updated_by
		FROM settings
		WHERE user_id = $1 AND key = $2;
	`
	var modelSetting models.Setting
	err := r.Pool.QueryRow(ctx, query, userID, key).Scan(
		&modelSetting.UserID,
		&modelSetting.Key,
		&modelSetting.Value,
		&modelSetting.CreatedAt,
		&modelSetting.CreatedBy,
		&modelSetting.LastUpdatedAt,
		&modelSetting.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find setting %s: %w", key, err)
	}

	domainSetting := mapping.ToDomainSetting(modelSetting)
	return &domainSetting, nil
}

// ListSettingsByUser retrieves every setting a user has stored.
func (r *PgxSettingRepository) ListSettingsByUser(ctx context.Context, userID string) ([]domain.Setting, error) {
	query := `
		SELECT user_id, key, value, created_at, created_by, last_updated_at, last_updated_by
		FROM settings
		WHERE user_id = $1
		ORDER BY key;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query settings: %w", err)
	}
	defer rows.Close()

	modelSettings, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Setting, error) {
		var setting models.Setting
		err := row.Scan(
			&setting.UserID,
			&setting.Key,
			&setting.Value,
			&setting.CreatedAt,
			&setting.CreatedBy,
			&setting.LastUpdatedAt,
			&setting.LastUpdatedBy,
		)
		return setting, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan settings: %w", err)
	}

	return mapping.ToDomainSettingSlice(modelSettings), nil
}
