package services

import (
	"context"

	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/PriceTrackr/price_tracker_app/internal/dto"
)

// CouponReaderSvc defines read operations for the shared coupon feed
type CouponReaderSvc interface {
	// GetCoupon retrieves a coupon by id.
	GetCoupon(ctx context.Context, couponID string) (*domain.Coupon, error)

	// ListCoupons retrieves the full coupon set.
	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
}

// CouponWriterSvc defines write operations for the shared coupon feed
type CouponWriterSvc interface {
	// CreateCoupon validates and persists a structured coupon.
	CreateCoupon(ctx context.Context, creatorUserID string, req dto.CreateCouponRequest) (*domain.Coupon, error)

	// ParseCouponText parses OCR text into an unpersisted coupon preview.
	ParseCouponText(ctx context.Context, text string) (*domain.Coupon, error)

	// DeleteCoupon removes a coupon.
	DeleteCoupon(ctx context.Context, couponID string) error
}

// CouponSvcFacade combines all coupon-related service interfaces
type CouponSvcFacade interface {
	CouponReaderSvc
	CouponWriterSvc
}
