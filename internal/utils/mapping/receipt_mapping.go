package mapping

import (
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/PriceTrackr/price_tracker_app/internal/models"
)

// ToModelReceipt converts a domain Receipt header to a model Receipt
func ToModelReceipt(d domain.Receipt) models.Receipt {
	return models.Receipt{
		ReceiptID:    d.ReceiptID,
		UserID:       d.UserID,
		PurchaseDate: d.PurchaseDate.Time(),
		Subtotal:     d.Subtotal,
		Tax:          d.Tax,
		Total:        d.Total,
		RawText:      d.RawText,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToModelReceiptItems converts a domain Receipt's items to model rows
func ToModelReceiptItems(d domain.Receipt) []models.ReceiptItem {
	items := make([]models.ReceiptItem, len(d.Items))
	for i, item := range d.Items {
		items[i] = models.ReceiptItem{
			ReceiptID:   d.ReceiptID,
			ItemCode:    item.ItemCode,
			Description: item.Description,
			FinalPrice:  item.FinalPrice,
			Discount:    item.Discount,
			LineNumber:  item.LineNumber,
		}
	}
	return items
}

// ToDomainReceipt converts a model Receipt and its item rows to a domain Receipt
func ToDomainReceipt(m models.Receipt, items []models.ReceiptItem) domain.Receipt {
	domainItems := make([]domain.ReceiptItem, len(items))
	for i, item := range items {
		domainItems[i] = domain.ReceiptItem{
			ItemCode:    item.ItemCode,
			Description: item.Description,
			FinalPrice:  item.FinalPrice,
			Discount:    item.Discount,
			LineNumber:  item.LineNumber,
		}
	}
	return domain.Receipt{
		ReceiptID:    m.ReceiptID,
		UserID:       m.UserID,
		PurchaseDate: domain.DateOf(m.PurchaseDate),
		Subtotal:     m.Subtotal,
		Tax:          m.Tax,
		Total:        m.Total,
		RawText:      m.RawText,
		Items:        domainItems,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}
