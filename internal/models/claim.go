package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Claim represents a row in the claims table. The primary key is the
// composite (user_id, receipt_id, item_code, coupon_id).
type Claim struct {
	UserID    string          `db:"user_id"`
	ReceiptID string          `db:"receipt_id"`
	ItemCode  string          `db:"item_code"`
	CouponID  string          `db:"coupon_id"`
	Amount    decimal.Decimal `db:"amount"`
	ClaimedAt time.Time       `db:"claimed_at"`
}
