package matching_test

import (
	"testing"
	"time"

	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/PriceTrackr/price_tracker_app/internal/utils/matching"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(year int, month time.Month, day int) domain.Date {
	return domain.NewDate(year, month, day)
}

func price(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

func couponWithItem(couponID string, validFrom, validUntil domain.Date, item domain.CouponItem) domain.Coupon {
	return domain.Coupon{
		CouponID:   couponID,
		ValidFrom:  validFrom,
		ValidUntil: validUntil,
		Items:      []domain.CouponItem{item},
	}
}

func TestBuildPriceIndex_LowestPriceWins(t *testing.T) {
	coupons := []domain.Coupon{
		couponWithItem("c1", d(2026, 1, 1), d(2026, 1, 15), domain.CouponItem{
			ItemCode: "123456", Description: "Olive Oil", SalePrice: price("19.99"),
		}),
		couponWithItem("c2", d(2026, 2, 1), d(2026, 2, 15), domain.CouponItem{
			ItemCode: "123456", SalePrice: price("17.49"),
		}),
		couponWithItem("c3", d(2026, 3, 1), d(2026, 3, 15), domain.CouponItem{
			ItemCode: "123456", SalePrice: price("18.99"),
		}),
	}

	index := matching.BuildPriceIndex(coupons)

	entry, ok := index["123456"]
	require.True(t, ok)
	assert.True(t, entry.Price.Decimal.Equal(decimal.RequireFromString("17.49")))
	assert.Equal(t, "c2", entry.SourceCouponID)
	// ValidUntil stays with the seeding coupon
	assert.True(t, entry.ValidUntil.Equal(d(2026, 1, 15)))
	assert.Equal(t, "Olive Oil", entry.Description)
}

func TestBuildPriceIndex_EqualPriceKeepsFirstSource(t *testing.T) {
	coupons := []domain.Coupon{
		couponWithItem("first", d(2026, 1, 1), d(2026, 1, 15), domain.CouponItem{
			ItemCode: "123456", SalePrice: price("9.99"),
		}),
		couponWithItem("second", d(2026, 2, 1), d(2026, 2, 15), domain.CouponItem{
			ItemCode: "123456", SalePrice: price("9.99"),
		}),
	}

	index := matching.BuildPriceIndex(coupons)

	assert.Equal(t, "first", index["123456"].SourceCouponID)
}

func TestBuildPriceIndex_LargestDiscountWins(t *testing.T) {
	coupons := []domain.Coupon{
		couponWithItem("c1", d(2026, 1, 1), d(2026, 1, 15), domain.CouponItem{
			ItemCode: "777777", DiscountAmount: price("3.00"),
		}),
		couponWithItem("c2", d(2026, 2, 1), d(2026, 2, 15), domain.CouponItem{
			ItemCode: "777777", DiscountAmount: price("7.00"),
		}),
		couponWithItem("c3", d(2026, 3, 1), d(2026, 3, 15), domain.CouponItem{
			ItemCode: "777777", DiscountAmount: price("5.00"),
		}),
	}

	index := matching.BuildPriceIndex(coupons)

	entry := index["777777"]
	assert.False(t, entry.Price.Valid)
	assert.True(t, entry.Discount.Decimal.Equal(decimal.RequireFromString("7.00")))
}

func TestBuildPriceIndex_PriceAndDiscountTrackedIndependently(t *testing.T) {
	coupons := []domain.Coupon{
		couponWithItem("priced", d(2026, 1, 1), d(2026, 1, 15), domain.CouponItem{
			ItemCode: "123456", SalePrice: price("14.99"),
		}),
		couponWithItem("discounted", d(2026, 2, 1), d(2026, 2, 15), domain.CouponItem{
			ItemCode: "123456", DiscountAmount: price("4.00"),
		}),
	}

	index := matching.BuildPriceIndex(coupons)

	entry := index["123456"]
	assert.True(t, entry.Price.Decimal.Equal(decimal.RequireFromString("14.99")))
	assert.True(t, entry.Discount.Decimal.Equal(decimal.RequireFromString("4.00")))
	// Improving only the discount does not steal the price source
	assert.Equal(t, "priced", entry.SourceCouponID)
}

func TestBuildPriceIndex_IgnoresItemsWithoutPriceOrDiscount(t *testing.T) {
	coupons := []domain.Coupon{
		couponWithItem("c1", d(2026, 1, 1), d(2026, 1, 15), domain.CouponItem{
			ItemCode: "000001",
		}),
		couponWithItem("c2", d(2026, 1, 1), d(2026, 1, 15), domain.CouponItem{
			ItemCode: "000002", SalePrice: decimal.NullDecimal{Decimal: decimal.Zero, Valid: true},
		}),
	}

	index := matching.BuildPriceIndex(coupons)

	assert.Empty(t, index)
}
