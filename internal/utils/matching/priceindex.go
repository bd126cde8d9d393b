// Package matching implements the price-adjustment engine: the price
// index reduction over coupons, the purchase/coupon matcher with its
// eligibility window policy, and the ranking and aggregation helpers.
// Everything in this package is a pure function over fully materialized
// inputs; nothing here touches storage or mutates its arguments.
package matching

import (
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
)

// BuildPriceIndex reduces every coupon line item into a per-item-code
// best-known price entry. Lowest definite sale price wins (strictly
// lower, so equal prices keep the first source coupon); largest
// discount wins. Price and discount are tracked independently: a later
// coupon can improve the discount without becoming the price source.
// Items with neither a positive sale price nor a positive discount are
// ignored.
func BuildPriceIndex(coupons []domain.Coupon) map[string]domain.PriceIndexEntry {
	index := make(map[string]domain.PriceIndexEntry)

	for _, coupon := range coupons {
		for _, item := range coupon.Items {
			hasPrice := item.HasSalePrice()
			hasDiscount := item.HasDiscount()
			if !hasPrice && !hasDiscount {
				continue
			}

			entry, seen := index[item.ItemCode]
			if !seen {
				entry = domain.PriceIndexEntry{
					SourceCouponID: coupon.CouponID,
					ValidUntil:     coupon.ValidUntil,
					Description:    item.Description,
				}
				if hasPrice {
					entry.Price = item.SalePrice
				}
				if hasDiscount {
					entry.Discount = item.DiscountAmount
				}
				index[item.ItemCode] = entry
				continue
			}

			if hasPrice && (!entry.Price.Valid || item.SalePrice.Decimal.LessThan(entry.Price.Decimal)) {
				entry.Price = item.SalePrice
				entry.SourceCouponID = coupon.CouponID
			}
			if hasDiscount && (!entry.Discount.Valid || item.DiscountAmount.Decimal.GreaterThan(entry.Discount.Decimal)) {
				entry.Discount = item.DiscountAmount
			}
			index[item.ItemCode] = entry
		}
	}

	return index
}
