package services

import (
	"context"
	"fmt"
	"time"

	"github.com/PriceTrackr/price_tracker_app/internal/apperrors"
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	portsrepo "github.com/PriceTrackr/price_tracker_app/internal/core/ports/repositories"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
	"github.com/PriceTrackr/price_tracker_app/internal/parsing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponService struct {
	couponRepo portsrepo.CouponRepositoryFacade
}

func NewCouponService(couponRepo portsrepo.CouponRepositoryFacade) *CouponService {
	return &CouponService{couponRepo: couponRepo}
}

func (s *CouponService) CreateCoupon(ctx context.Context, creatorUserID string, req dto.CreateCouponRequest) (*domain.Coupon, error) {
	validFrom, err := domain.ParseDate(req.ValidFrom)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	validUntil, err := domain.ParseDate(req.ValidUntil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}

	source := req.Source
	if source == "" {
		source = "upload"
	}

	now := time.Now()
	coupon := domain.Coupon{
		CouponID:   uuid.NewString(),
		Source:     source,
		ValidFrom:  validFrom,
		ValidUntil: validUntil,
		RawText:    req.RawText,
		Items:      make([]domain.CouponItem, len(req.Items)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	for i, item := range req.Items {
		coupon.Items[i] = domain.CouponItem{
			ItemCode:       item.ItemCode,
			Description:    item.Description,
			SalePrice:      toNullDecimal(item.SalePrice),
			DiscountAmount: toNullDecimal(item.DiscountAmount),
		}
	}

	if err := parsing.ValidateCoupon(coupon); err != nil {
		return nil, err
	}

	if err := s.couponRepo.SaveCoupon(ctx, coupon); err != nil {
		return nil, fmt.Errorf("failed to create coupon in service: %w", err)
	}

	return &coupon, nil
}

func (s *CouponService) ParseCouponText(ctx context.Context, text string) (*domain.Coupon, error) {
	coupon := parsing.ParseCouponText(text, domain.Today())
	return &coupon, nil
}

func (s *CouponService) GetCoupon(ctx context.Context, couponID string) (*domain.Coupon, error) {
	coupon, err := s.couponRepo.FindCouponByID(ctx, couponID)
	if err != nil {
		return nil, fmt.Errorf("failed to get coupon in service: %w", err)
	}
	return coupon, nil
}

func (s *CouponService) ListCoupons(ctx context.Context) ([]domain.Coupon, error) {
	coupons, err := s.couponRepo.ListCoupons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list coupons in service: %w", err)
	}
	// Return empty slice if no coupons found, not nil
	if coupons == nil {
		return []domain.Coupon{}, nil
	}
	return coupons, nil
}

func (s *CouponService) DeleteCoupon(ctx context.Context, couponID string) error {
	if err := s.couponRepo.DeleteCoupon(ctx, couponID); err != nil {
		return fmt.Errorf("failed to delete coupon in service: %w", err)
	}
	return nil
}

func toNullDecimal(value *decimal.Decimal) decimal.NullDecimal {
	if value == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *value, Valid: true}
}
