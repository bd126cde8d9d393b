package repositories

import (
	"context"

	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
)

// CouponReader defines read operations for coupon data
type CouponReader interface {
	// FindCouponByID retrieves a coupon with its items.
	FindCouponByID(ctx context.Context, couponID string) (*domain.Coupon, error)

	// ListCoupons retrieves the full shared coupon set, items included.
	ListCoupons(ctx context.Context) ([]domain.Coupon, error)
}

// CouponWriter defines write operations for coupon data
type CouponWriter interface {
	// SaveCoupon persists a coupon and its items atomically.
	SaveCoupon(ctx context.Context, coupon domain.Coupon) error

	// DeleteCoupon removes a coupon and its items.
	DeleteCoupon(ctx context.Context, couponID string) error
}

// CouponRepositoryFacade combines all coupon-related repository interfaces
type CouponRepositoryFacade interface {
	CouponReader
	CouponWriter
}

// CouponRepositoryWithTx extends CouponRepositoryFacade with transaction capabilities
type CouponRepositoryWithTx interface {
	CouponRepositoryFacade
	TransactionManager
}
