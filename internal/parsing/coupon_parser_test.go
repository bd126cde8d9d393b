package parsing_test

import (
	"errors"
	"testing"
	"time"

	"github.com/PriceTrackr/price_tracker_app/internal/apperrors"
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/PriceTrackr/price_tracker_app/internal/parsing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCouponText_DollarOff(t *testing.T) {
	text := `MEMBER SAVINGS
$6 OFF
Olive Oil 2L
Item 123456
Valid Jan. 15 - Jan. 31, 2026`

	coupon := parsing.ParseCouponText(text, domain.NewDate(2026, time.January, 10))

	assert.True(t, coupon.ValidFrom.Equal(domain.NewDate(2026, time.January, 15)))
	assert.True(t, coupon.ValidUntil.Equal(domain.NewDate(2026, time.January, 31)))

	require.Len(t, coupon.Items, 1)
	item := coupon.Items[0]
	assert.Equal(t, "123456", item.ItemCode)
	assert.Equal(t, "Olive Oil 2L", item.Description)
	assert.True(t, item.HasDiscount())
	assert.True(t, item.DiscountAmount.Decimal.Equal(decimal.NewFromInt(6)))
	assert.False(t, item.HasSalePrice())
}

func TestParseCouponText_SalePriceBeforeItem(t *testing.T) {
	text := `Valid Feb. 1 - Feb. 28, 2026
LIMIT 1
2
Premium Blender
$49.99
Item 9876543`

	coupon := parsing.ParseCouponText(text, domain.NewDate(2026, time.January, 10))

	assert.True(t, coupon.ValidFrom.Equal(domain.NewDate(2026, time.February, 1)))
	assert.True(t, coupon.ValidUntil.Equal(domain.NewDate(2026, time.February, 28)))

	require.Len(t, coupon.Items, 1)
	item := coupon.Items[0]
	assert.Equal(t, "9876543", item.ItemCode)
	assert.Equal(t, "Premium Blender", item.Description)
	assert.True(t, item.HasSalePrice())
	assert.True(t, item.SalePrice.Decimal.Equal(decimal.RequireFromString("49.99")))
	assert.False(t, item.HasDiscount())
}

func TestParseCouponText_MultipleOffers(t *testing.T) {
	text := `$6 OFF
Olive Oil 2L
Item 123456
$10 OFF
Laundry Detergent
Item 2345678`

	coupon := parsing.ParseCouponText(text, domain.NewDate(2026, time.January, 10))

	require.Len(t, coupon.Items, 2)
	assert.Equal(t, "123456", coupon.Items[0].ItemCode)
	assert.True(t, coupon.Items[0].DiscountAmount.Decimal.Equal(decimal.NewFromInt(6)))
	assert.Equal(t, "2345678", coupon.Items[1].ItemCode)
	assert.True(t, coupon.Items[1].DiscountAmount.Decimal.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "Laundry Detergent", coupon.Items[1].Description)
}

func TestParseCouponText_WindowFallsBackToThirtyDays(t *testing.T) {
	today := domain.NewDate(2026, time.January, 10)

	coupon := parsing.ParseCouponText("$5 OFF\nItem 123456", today)

	assert.True(t, coupon.ValidFrom.Equal(today))
	assert.True(t, coupon.ValidUntil.Equal(today.AddDays(30)))
	require.Len(t, coupon.Items, 1)
	assert.Equal(t, "Unknown Item", coupon.Items[0].Description)
}

func TestParseCouponText_NumericExpiryLine(t *testing.T) {
	today := domain.NewDate(2026, time.January, 10)

	coupon := parsing.ParseCouponText("Expires 01/31/2026\n$5 OFF\nItem 1234567", today)

	assert.True(t, coupon.ValidFrom.Equal(today))
	assert.True(t, coupon.ValidUntil.Equal(domain.NewDate(2026, time.January, 31)))
}

func TestValidateCoupon(t *testing.T) {
	valid := domain.Coupon{
		ValidFrom:  domain.NewDate(2026, time.January, 15),
		ValidUntil: domain.NewDate(2026, time.January, 31),
		Items: []domain.CouponItem{
			{ItemCode: "123456", SalePrice: decimal.NullDecimal{Decimal: decimal.RequireFromString("18.99"), Valid: true}},
		},
	}
	assert.NoError(t, parsing.ValidateCoupon(valid))
}

func TestValidateCoupon_Errors(t *testing.T) {
	testCases := []struct {
		name   string
		coupon domain.Coupon
	}{
		{
			name:   "empty coupon",
			coupon: domain.Coupon{},
		},
		{
			name: "item without price or discount",
			coupon: domain.Coupon{
				ValidUntil: domain.NewDate(2026, time.January, 31),
				Items:      []domain.CouponItem{{ItemCode: "123456"}},
			},
		},
		{
			name: "short item code",
			coupon: domain.Coupon{
				ValidUntil: domain.NewDate(2026, time.January, 31),
				Items: []domain.CouponItem{
					{ItemCode: "123", SalePrice: decimal.NullDecimal{Decimal: decimal.RequireFromString("18.99"), Valid: true}},
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := parsing.ValidateCoupon(tc.coupon)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}
