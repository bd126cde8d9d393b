package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PriceTrackr/price_tracker_app/internal/apperrors"
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	portsrepo "github.com/PriceTrackr/price_tracker_app/internal/core/ports/repositories"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
)

// ExportService dumps and restores a user's data as one JSON bundle.
// Coupons are part of the shared feed, so importing only inserts the
// ones not already present.
type ExportService struct {
	receiptRepo portsrepo.ReceiptRepositoryFacade
	couponRepo  portsrepo.CouponRepositoryFacade
	claimRepo   portsrepo.ClaimRepositoryFacade
	settingRepo portsrepo.SettingRepositoryFacade
}

func NewExportService(
	receiptRepo portsrepo.ReceiptRepositoryFacade,
	couponRepo portsrepo.CouponRepositoryFacade,
	claimRepo portsrepo.ClaimRepositoryFacade,
	settingRepo portsrepo.SettingRepositoryFacade,
) *ExportService {
	return &ExportService{
		receiptRepo: receiptRepo,
		couponRepo:  couponRepo,
		claimRepo:   claimRepo,
		settingRepo: settingRepo,
	}
}

func (s *ExportService) Export(ctx context.Context, userID string) (*dto.ExportBundle, error) {
	receipts, err := s.receiptRepo.ListReceiptsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export receipts: %w", err)
	}
	coupons, err := s.couponRepo.ListCoupons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export coupons: %w", err)
	}
	claims, err := s.claimRepo.ListClaimsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export claims: %w", err)
	}
	settings, err := s.settingRepo.ListSettingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to export settings: %w", err)
	}

	settingsMap := make(map[string]string, len(settings))
	for _, setting := range settings {
		settingsMap[setting.Key] = setting.Value
	}

	if receipts == nil {
		receipts = []domain.Receipt{}
	}
	if coupons == nil {
		coupons = []domain.Coupon{}
	}
	if claims == nil {
		claims = []domain.Claim{}
	}

	return &dto.ExportBundle{
		ExportedAt: time.Now().UTC(),
		Receipts:   receipts,
		Coupons:    coupons,
		Claims:     claims,
		Settings:   settingsMap,
	}, nil
}

// Import restores a bundle for the user. Records whose IDs already
// exist are left untouched, so re-importing the same bundle is safe.
func (s *ExportService) Import(ctx context.Context, userID string, bundle dto.ExportBundle) error {
	now := time.Now().UTC()

	for _, receipt := range bundle.Receipts {
		existing, err := s.receiptRepo.FindReceiptByID(ctx, receipt.ReceiptID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check receipt %s: %w", receipt.ReceiptID, err)
		}
		if existing != nil {
			continue
		}
		receipt.UserID = userID
		receipt.LastUpdatedAt = now
		receipt.LastUpdatedBy = userID
		if err := s.receiptRepo.SaveReceipt(ctx, receipt); err != nil {
			return fmt.Errorf("failed to import receipt %s: %w", receipt.ReceiptID, err)
		}
	}

	for _, coupon := range bundle.Coupons {
		existing, err := s.couponRepo.FindCouponByID(ctx, coupon.CouponID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check coupon %s: %w", coupon.CouponID, err)
		}
		if existing != nil {
			continue
		}
		coupon.LastUpdatedAt = now
		coupon.LastUpdatedBy = userID
		if err := s.couponRepo.SaveCoupon(ctx, coupon); err != nil {
			return fmt.Errorf("failed to import coupon %s: %w", coupon.CouponID, err)
		}
	}

	for _, claim := range bundle.Claims {
		claim.UserID = userID
		if err := s.claimRepo.SaveClaim(ctx, claim); err != nil {
			return fmt.Errorf("failed to import claim for receipt %s: %w", claim.ReceiptID, err)
		}
	}

	for key, value := range bundle.Settings {
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
			return fmt.Errorf("failed to import setting %s: %w", key, err)
		}
	}

	return nil
}
