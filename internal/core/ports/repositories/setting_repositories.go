package repositories

import (
	"context"

	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
)

// SettingReader defines read operations for per-user settings
type SettingReader interface {
	// FindSetting retrieves a single setting; ErrNotFound when unset.
	FindSetting(ctx context.Context, userID, key string) (*domain.Setting, error)

	// ListSettingsByUser retrieves every setting a user has stored.
	ListSettingsByUser(ctx context.Context, userID string) ([]domain.Setting, error)
}

// SettingWriter defines write operations for per-user settings
type SettingWriter interface {
	// SaveSetting inserts or updates a setting.
	SaveSetting(ctx context.Context, setting domain.Setting) error
}

// SettingRepositoryFacade combines all setting-related repository interfaces
type SettingRepositoryFacade interface {
	SettingReader
	SettingWriter
}
