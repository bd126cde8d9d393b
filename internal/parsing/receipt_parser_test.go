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

func TestParseReceiptText_SingleLineItems(t *testing.T) {
	text := `WHOLESALE CLUB
01/01/2026
123456 OLIVE OIL 2L 24.99
SUBTOTAL 24.99
TAX 1.50
TOTAL 26.49`

	receipt := parsing.ParseReceiptText(text, domain.NewDate(2026, time.March, 1))

	assert.True(t, receipt.PurchaseDate.Equal(domain.NewDate(2026, time.January, 1)))
	require.Len(t, receipt.Items, 1)

	item := receipt.Items[0]
	assert.Equal(t, "123456", item.ItemCode)
	assert.Equal(t, "OLIVE OIL 2L", item.Description)
	assert.True(t, item.FinalPrice.Equal(decimal.RequireFromString("24.99")))
	assert.Equal(t, 3, item.LineNumber)

	assert.True(t, receipt.Subtotal.Equal(decimal.RequireFromString("24.99")))
	assert.True(t, receipt.Tax.Equal(decimal.RequireFromString("1.50")))
	assert.True(t, receipt.Total.Equal(decimal.RequireFromString("26.49")))
	assert.Equal(t, text, receipt.RawText)
}

func TestParseReceiptText_MultiLineItemWithDiscount(t *testing.T) {
	text := `123456
OLIVE OIL
2L
24.99
DISCOUNT -6.00`

	receipt := parsing.ParseReceiptText(text, domain.NewDate(2026, time.January, 1))

	require.Len(t, receipt.Items, 1)
	item := receipt.Items[0]
	assert.Equal(t, "123456", item.ItemCode)
	assert.Equal(t, "OLIVE OIL 2L", item.Description)
	assert.True(t, item.Discount.Equal(decimal.RequireFromString("-6.00")))
	assert.True(t, item.FinalPrice.Equal(decimal.RequireFromString("18.99")))

	// Totals are derived when the OCR missed the total block.
	assert.True(t, receipt.Subtotal.Equal(decimal.RequireFromString("18.99")))
	assert.True(t, receipt.Total.Equal(decimal.RequireFromString("18.99")))
}

func TestParseReceiptText_DateFallsBackToToday(t *testing.T) {
	today := domain.NewDate(2026, time.February, 10)

	receipt := parsing.ParseReceiptText("123456\n9.99", today)

	assert.True(t, receipt.PurchaseDate.Equal(today))
	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "123456", receipt.Items[0].ItemCode)
}

func TestParseReceiptText_TwoDigitYear(t *testing.T) {
	receipt := parsing.ParseReceiptText("01/15/26\n123456 SOAP 4.99", domain.NewDate(2026, time.March, 1))

	assert.True(t, receipt.PurchaseDate.Equal(domain.NewDate(2026, time.January, 15)))
}

func TestParseReceiptText_SkipsNoise(t *testing.T) {
	text := `THANK YOU FOR SHOPPING
*** MEMBER 48213 ***
123456 OLIVE OIL 24.99
RETURN POLICY APPLIES`

	receipt := parsing.ParseReceiptText(text, domain.NewDate(2026, time.January, 1))

	require.Len(t, receipt.Items, 1)
	assert.Equal(t, "123456", receipt.Items[0].ItemCode)
}

func TestValidateReceipt(t *testing.T) {
	valid := domain.Receipt{
		PurchaseDate: domain.NewDate(2026, time.January, 1),
		Items: []domain.ReceiptItem{
			{ItemCode: "123456", FinalPrice: decimal.RequireFromString("24.99")},
		},
	}
	assert.NoError(t, parsing.ValidateReceipt(valid))
}

func TestValidateReceipt_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		receipt domain.Receipt
	}{
		{
			name:    "empty receipt",
			receipt: domain.Receipt{},
		},
		{
			name: "short item code",
			receipt: domain.Receipt{
				PurchaseDate: domain.NewDate(2026, time.January, 1),
				Items:        []domain.ReceiptItem{{ItemCode: "123", FinalPrice: decimal.RequireFromString("1.00")}},
			},
		},
		{
			name: "negative price",
			receipt: domain.Receipt{
				PurchaseDate: domain.NewDate(2026, time.January, 1),
				Items:        []domain.ReceiptItem{{ItemCode: "123456", FinalPrice: decimal.RequireFromString("-1.00")}},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := parsing.ValidateReceipt(tc.receipt)
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrValidation))
		})
	}
}
