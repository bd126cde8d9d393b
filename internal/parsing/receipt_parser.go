// Package parsing turns OCR-extracted receipt and coupon text into
// structured records. OCR itself happens outside this service; clients
// send the raw text. The grammar is regex-driven and deliberately
// forgiving: OCR output is noisy, so unrecognized lines are skipped
// rather than rejected.
package parsing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PriceTrackr/price_tracker_app/internal/apperrors"
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	datePattern     = regexp.MustCompile(`(\d{1,2})[/\-.](\d{1,2})[/\-.](\d{2,4})`)
	lineItemPattern = regexp.MustCompile(`(?i)(\d{4,12})\s+([A-Z0-9\s\-/.,]+?)\s+(\$?\s*\d+\.\d{2})`)
	bareItemPattern = regexp.MustCompile(`^\d{4,12}$`)
	pricePattern    = regexp.MustCompile(`(-?\$?\s*\d+\.\d{2})`)
	priceAtEnd      = regexp.MustCompile(`(-?\$?\s*\d+\.\d{2})$`)

	subtotalKeyword = regexp.MustCompile(`(?i)sub\s*total|subtotal`)
	taxKeyword      = regexp.MustCompile(`(?i)\btax\b`)
	totalKeyword    = regexp.MustCompile(`(?i)\btotal\b`)
	discountKeyword = regexp.MustCompile(`(?i)discount|savings|save|off`)
)

// ParseReceiptText parses OCR text into an unpersisted Receipt. The
// purchase date falls back to today when no date is found in the text.
func ParseReceiptText(text string, today domain.Date) domain.Receipt {
	receipt := domain.Receipt{
		PurchaseDate: extractPurchaseDate(text, today),
		Subtotal:     decimal.Zero,
		Tax:          decimal.Zero,
		Total:        decimal.Zero,
		RawText:      text,
		Items:        []domain.ReceiptItem{},
	}

	var (
		pendingItemCode string
		description     strings.Builder
	)

	for lineNo, line := range nonEmptyLines(text) {
		switch {
		case subtotalKeyword.MatchString(line):
			if amount, ok := extractPrice(line); ok {
				receipt.Subtotal = amount
			}
			continue
		case taxKeyword.MatchString(line):
			if amount, ok := extractPrice(line); ok {
				receipt.Tax = amount
			}
			continue
		case totalKeyword.MatchString(line):
			if amount, ok := extractPrice(line); ok {
				receipt.Total = amount
			}
			continue
		}

		if m := lineItemPattern.FindStringSubmatch(line); m != nil {
			// Item code, description and price on a single line.
			price, err := parseMoney(m[3])
			if err == nil {
				receipt.Items = append(receipt.Items, domain.ReceiptItem{
					ItemCode:    m[1],
					Description: strings.TrimSpace(m[2]),
					FinalPrice:  price,
					Discount:    decimal.Zero,
					LineNumber:  lineNo + 1,
				})
			}
			pendingItemCode = ""
			description.Reset()
			continue
		}

		if bareItemPattern.MatchString(line) {
			pendingItemCode = line
			continue
		}

		if m := priceAtEnd.FindStringSubmatch(line); m != nil {
			price, err := parseMoney(m[1])
			if err != nil {
				continue
			}
			switch {
			case pendingItemCode != "":
				// An earlier line carried the item code; this one closes the item.
				receipt.Items = append(receipt.Items, domain.ReceiptItem{
					ItemCode:    pendingItemCode,
					Description: strings.TrimSpace(description.String()),
					FinalPrice:  price,
					Discount:    decimal.Zero,
					LineNumber:  lineNo + 1,
				})
				pendingItemCode = ""
				description.Reset()
			case discountKeyword.MatchString(line) && len(receipt.Items) > 0:
				// Discount line folds into the most recent item; the
				// printed amount is already negative.
				last := &receipt.Items[len(receipt.Items)-1]
				last.Discount = price
				last.FinalPrice = last.FinalPrice.Add(price)
			}
			continue
		}

		if pendingItemCode != "" {
			description.WriteString(" ")
			description.WriteString(line)
		}
	}

	// Derive totals when the OCR missed the total block.
	if len(receipt.Items) > 0 && receipt.Total.IsZero() {
		sum := decimal.Zero
		for _, item := range receipt.Items {
			sum = sum.Add(item.FinalPrice)
		}
		receipt.Subtotal = sum
		receipt.Total = sum.Add(receipt.Tax)
	}

	return receipt
}

// ValidateReceipt checks a parsed or client-supplied receipt before it
// is persisted. Errors wrap apperrors.ErrValidation.
func ValidateReceipt(receipt domain.Receipt) error {
	var problems []string

	if receipt.PurchaseDate.IsZero() {
		problems = append(problems, "purchase date is required")
	}
	if len(receipt.Items) == 0 {
		problems = append(problems, "at least one item is required")
	}
	for i, item := range receipt.Items {
		if len(item.ItemCode) < 4 {
			problems = append(problems, fmt.Sprintf("item %d: item number must be at least 4 digits", i+1))
		}
		if item.FinalPrice.IsNegative() {
			problems = append(problems, fmt.Sprintf("item %d: invalid price", i+1))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

func nonEmptyLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func extractPurchaseDate(text string, today domain.Date) domain.Date {
	if m := datePattern.FindStringSubmatch(text); m != nil {
		if date, ok := parseNumericDate(m[1], m[2], m[3]); ok {
			return date
		}
	}
	return today
}

// parseNumericDate interprets MM/DD/YYYY parts, widening 2-digit years.
func parseNumericDate(monthStr, dayStr, yearStr string) (domain.Date, bool) {
	month, err1 := strconv.Atoi(monthStr)
	day, err2 := strconv.Atoi(dayStr)
	year, err3 := strconv.Atoi(yearStr)
	if err1 != nil || err2 != nil || err3 != nil {
		return domain.Date{}, false
	}
	if year < 100 {
		if year > 50 {
			year += 1900
		} else {
			year += 2000
		}
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return domain.Date{}, false
	}
	return domain.NewDate(year, time.Month(month), day), true
}

func extractPrice(line string) (decimal.Decimal, bool) {
	m := pricePattern.FindStringSubmatch(line)
	if m == nil {
		return decimal.Zero, false
	}
	amount, err := parseMoney(m[1])
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

var moneyCleaner = strings.NewReplacer("$", "", " ", "")

func parseMoney(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(moneyCleaner.Replace(s))
}
