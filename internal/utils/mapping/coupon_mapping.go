package mapping

import (
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/PriceTrackr/price_tracker_app/internal/models"
)

// ToModelCoupon converts a domain Coupon header to a model Coupon
func ToModelCoupon(d domain.Coupon) models.Coupon {
	return models.Coupon{
		CouponID:    d.CouponID,
		Source:      d.Source,
		ValidFrom:   d.ValidFrom.Time(),
		ValidUntil:  d.ValidUntil.Time(),
		RawText:     d.RawText,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToModelCouponItems converts a domain Coupon's items to model rows
func ToModelCouponItems(d domain.Coupon) []models.CouponItem {
	items := make([]models.CouponItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = models.CouponItem{
			CouponID:       d.CouponID,
			ItemCode:       item.ItemCode,
			Description:    item.Description,
			SalePrice:      item.SalePrice,
			DiscountAmount: item.DiscountAmount,
		}
	}
	return items
}

// ToDomainCoupon converts a model Coupon and its item rows to a domain Coupon
func ToDomainCoupon(m models.Coupon, items []models.CouponItem) domain.Coupon {
	domainItems := make([]domain.CouponItem, len(items))
	for i, item := range items {
		domainItems[i] = domain.CouponItem{
			ItemCode:       item.ItemCode,
			Description:    item.Description,
			SalePrice:      item.SalePrice,
			DiscountAmount: item.DiscountAmount,
		}
	}
	return domain.Coupon{
		CouponID:    m.CouponID,
		Source:      m.Source,
		ValidFrom:   domain.DateOf(m.ValidFrom),
		ValidUntil:  domain.DateOf(m.ValidUntil),
		RawText:     m.RawText,
		Items:       domainItems,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
