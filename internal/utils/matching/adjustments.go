package matching

import (
	"sort"

	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateAdjustments joins every receipt line item against the price
// index built from coupons and emits one adjustment opportunity per
// qualifying (purchase, coupon) pair.
//
// Window policy, anchored on the promotion start date:
//   - bought during [validFrom, validUntil]: no adjustment, the shopper
//     already paid the promotional price
//   - bought after validUntil: no adjustment
//   - bought before validFrom: qualifies only when the purchase is at
//     most windowDays before validFrom; the claim deadline is
//     validFrom + windowDays and eligibility is today <= deadline
//
// Missing index entries, unresolvable source coupons and item-less
// records all degrade to "no opportunity"; the matcher never fails.
func CalculateAdjustments(receipts []domain.Receipt, coupons []domain.Coupon, windowDays int, today domain.Date) []domain.Adjustment {
	index := BuildPriceIndex(coupons)

	couponsByID := make(map[string]domain.Coupon, len(coupons))
	for _, coupon := range coupons {
		couponsByID[coupon.CouponID] = coupon
	}

	var opportunities []domain.Adjustment

	for _, receipt := range receipts {
		if receipt.PurchaseDate.IsZero() {
			continue
		}

		for _, item := range receipt.Items {
			entry, ok := index[item.ItemCode]
			if !ok {
				continue // no coupon ever referenced this item
			}
			coupon, ok := couponsByID[entry.SourceCouponID]
			if !ok {
				continue // inconsistent index/coupon pair, treat as no match
			}

			purchaseDate := receipt.PurchaseDate
			if purchaseDate.After(coupon.ValidUntil) || !purchaseDate.Before(coupon.ValidFrom) {
				// Bought during or after the promotion window.
				continue
			}

			daysBeforePromotion := purchaseDate.DaysUntil(coupon.ValidFrom)
			if daysBeforePromotion > windowDays {
				continue // too old relative to the promotion start
			}

			deadline := coupon.ValidFrom.AddDays(windowDays)
			eligible := !today.After(deadline)

			adjustment := domain.Adjustment{
				ItemCode:            item.ItemCode,
				Description:         itemDescription(item, entry),
				AmountPaid:          item.FinalPrice,
				DiscountAmount:      entry.Discount,
				PurchaseDate:        purchaseDate,
				DaysBeforePromotion: daysBeforePromotion,
				PromotionStartDate:  coupon.ValidFrom,
				AdjustmentDeadline:  deadline,
				PromotionValidUntil: entry.ValidUntil,
				Eligible:            eligible,
				ReceiptID:           receipt.ReceiptID,
				CouponID:            entry.SourceCouponID,
			}

			switch {
			case entry.Price.Valid && item.FinalPrice.GreaterThan(entry.Price.Decimal):
				// Exact price known and lower than what was paid.
				adjustment.CurrentPrice = entry.Price
				adjustment.AdjustmentAmount = item.FinalPrice.Sub(entry.Price.Decimal)
				opportunities = append(opportunities, adjustment)
			case !entry.Price.Valid && entry.Discount.Valid:
				// Discount-only coupon: the true post-discount price is
				// unknown, report the discount as a best-case estimate.
				adjustment.AdjustmentAmount = entry.Discount.Decimal
				adjustment.IsDiscountOnly = true
				opportunities = append(opportunities, adjustment)
			}
		}
	}

	return opportunities
}

func itemDescription(item domain.ReceiptItem, entry domain.PriceIndexEntry) string {
	if item.Description != "" {
		return item.Description
	}
	if entry.Description != "" {
		return entry.Description
	}
	return "Unknown Item"
}

// SortByAmountDesc orders opportunities biggest savings first.
func SortByAmountDesc(adjustments []domain.Adjustment) {
	sort.SliceStable(adjustments, func(i, j int) bool {
		return adjustments[i].AdjustmentAmount.GreaterThan(adjustments[j].AdjustmentAmount)
	})
}

// SortByPurchaseDateAsc orders opportunities oldest purchase first, so
// the claims expiring soonest appear at the top.
func SortByPurchaseDateAsc(adjustments []domain.Adjustment) {
	sort.SliceStable(adjustments, func(i, j int) bool {
		return adjustments[i].PurchaseDate.Before(adjustments[j].PurchaseDate)
	})
}

// Summarize computes counts and savings totals over a set of
// opportunities. TotalSavings sums eligible opportunities only;
// PotentialSavings sums everything.
func Summarize(adjustments []domain.Adjustment) domain.AdjustmentStats {
	stats := domain.AdjustmentStats{
		Total:            len(adjustments),
		TotalSavings:     decimal.Zero,
		PotentialSavings: decimal.Zero,
	}
	for _, adjustment := range adjustments {
		stats.PotentialSavings = stats.PotentialSavings.Add(adjustment.AdjustmentAmount)
		if adjustment.Eligible {
			stats.Eligible++
			stats.TotalSavings = stats.TotalSavings.Add(adjustment.AdjustmentAmount)
		} else {
			stats.Expired++
		}
	}
	return stats
}

// PartitionByEligibility splits opportunities into eligible and expired
// groups for display layers. Both slices are non-nil.
func PartitionByEligibility(adjustments []domain.Adjustment) domain.AdjustmentGroups {
	groups := domain.AdjustmentGroups{
		Eligible: []domain.Adjustment{},
		Expired:  []domain.Adjustment{},
	}
	for _, adjustment := range adjustments {
		if adjustment.Eligible {
			groups.Eligible = append(groups.Eligible, adjustment)
		} else {
			groups.Expired = append(groups.Expired, adjustment)
		}
	}
	return groups
}
