package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/PriceTrackr/price_tracker_app/internal/apperrors"
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	portsrepo "github.com/PriceTrackr/price_tracker_app/internal/core/ports/repositories"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
)

// SettingService manages per-user settings. Unset keys resolve to the
// configured application defaults.
type SettingService struct {
	settingRepo       portsrepo.SettingRepositoryFacade
	defaultWindowDays int
}

func NewSettingService(settingRepo portsrepo.SettingRepositoryFacade, defaultWindowDays int) *SettingService {
	if defaultWindowDays <= 0 {
		defaultWindowDays = domain.DefaultAdjustmentWindowDays
	}
	return &SettingService{
		settingRepo:       settingRepo,
		defaultWindowDays: defaultWindowDays,
	}
}

func (s *SettingService) GetSettings(ctx context.Context, userID string) (*dto.SettingsResponse, error) {
	settings, err := s.settingRepo.ListSettingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	res := &dto.SettingsResponse{AdjustmentWindow: s.defaultWindowDays}
	for _, setting := range settings {
		switch setting.Key {
		case domain.SettingAdjustmentWindow:
			if days, err := strconv.Atoi(setting.Value); err == nil && days > 0 {
				res.AdjustmentWindow = days
			}
		case domain.SettingDefaultStore:
			res.DefaultStore = setting.Value
		}
	}
	return res, nil
}

func (s *SettingService) UpdateSettings(ctx context.Context, userID string, req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	now := time.Now().UTC()
	if req.AdjustmentWindow != nil {
		if *req.AdjustmentWindow <= 0 {
			return nil, fmt.Errorf("%w: adjustment window must be positive", apperrors.ErrValidation)
		}
		if err := s.save(ctx, userID, domain.SettingAdjustmentWindow, strconv.Itoa(*req.AdjustmentWindow), now); err != nil {
			return nil, err
		}
	}
	if req.DefaultStore != nil {
		if err := s.save(ctx, userID, domain.SettingDefaultStore, *req.DefaultStore, now); err != nil {
			return nil, err
		}
	}
	return s.GetSettings(ctx, userID)
}

func (s *SettingService) AdjustmentWindowDays(ctx context.Context, userID string) (int, error) {
	setting, err := s.settingRepo.FindSetting(ctx, userID, domain.SettingAdjustmentWindow)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.defaultWindowDays, nil
		}
		return 0, fmt.Errorf("failed to resolve adjustment window: %w", err)
	}
	days, err := strconv.Atoi(setting.Value)
	if err != nil || days <= 0 {
		return s.defaultWindowDays, nil
	}
	return days, nil
}

func (s *SettingService) save(ctx context.Context, userID, key, value string, now time.Time) error {
	setting := domain.Setting{
		UserID: userID,
		Key:    key,
		Value:  value,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.settingRepo.SaveSetting(ctx, setting); err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}
