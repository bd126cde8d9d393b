package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Claim records that a user has collected a price adjustment at the
// store. Claims overlay matcher output; they never feed back into it.
type Claim struct {
	UserID string `json:"userID"`
	ClaimKey
	Amount    decimal.Decimal `json:"amount"` // Adjustment amount at claim time
	ClaimedAt time.Time       `json:"claimedAt"`
}
