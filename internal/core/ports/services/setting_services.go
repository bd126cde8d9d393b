package services

import (
	"context"

	"github.com/PriceTrackr/price_tracker_app/internal/dto"
)

// SettingSvcFacade manages per-user settings.
type SettingSvcFacade interface {
	// GetSettings returns the user's effective settings, defaults applied.
	GetSettings(ctx context.Context, userID string) (*dto.SettingsResponse, error)

	// UpdateSettings stores the provided settings and returns the result.
	UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)

	// AdjustmentWindowDays resolves the eligibility window policy
	// parameter for a user, falling back to the application default.
	AdjustmentWindowDays(ctx context.Context, userID string) (int, error)
}
