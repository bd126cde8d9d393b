package parsing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PriceTrackr/price_tracker_app/internal/apperrors"
	"github.com/PriceTrackr/price_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	validThruKeyword = regexp.MustCompile(`(?i)valid\s*(through|thru|until|to)|expires?`)
	validKeyword     = regexp.MustCompile(`(?i)valid`)

	discountOffPattern = regexp.MustCompile(`(?i)\$\s*(\d+(?:\.\d{2})?)\s*OFF`)
	itemRefPattern     = regexp.MustCompile(`(?i)Item\s+(\d{6,12})`)
	plainPricePattern  = regexp.MustCompile(`\$\s*(\d+\.\d{2})`)
	limitOrNumberLine  = regexp.MustCompile(`(?i)LIMIT|^\d+$`)

	// "Valid Jan. 15 - Jan. 31, 2026" style windows on printed coupons.
	namedWindowPattern = regexp.MustCompile(`(?i)Valid\s+([A-Za-z]+)\.?\s+(\d{1,2})\s*[-–]\s*([A-Za-z]+)\.?\s+(\d{1,2}),?\s+(\d{4})`)
)

var monthsByName = map[string]int{
	"jan": 1, "january": 1, "feb": 2, "february": 2, "mar": 3, "march": 3,
	"apr": 4, "april": 4, "may": 5, "jun": 6, "june": 6, "jul": 7, "july": 7,
	"aug": 8, "august": 8, "sep": 9, "september": 9, "oct": 10, "october": 10,
	"nov": 11, "november": 11, "dec": 12, "december": 12,
}

// ParseCouponText parses OCR text from a promotional coupon sheet into
// an unpersisted Coupon. When the text names no window the coupon is
// assumed to start today and run for thirty days.
func ParseCouponText(text string, today domain.Date) domain.Coupon {
	coupon := domain.Coupon{
		ValidFrom:  extractValidFrom(text, today),
		ValidUntil: extractValidUntil(text, today),
		RawText:    text,
		Items:      []domain.CouponItem{},
	}

	lines := nonEmptyLines(text)

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		if validThruKeyword.MatchString(line) || validKeyword.MatchString(line) {
			continue
		}

		// "$10 OFF" followed within a few lines by "Item 1234567".
		if m := discountOffPattern.FindStringSubmatch(line); m != nil {
			discount, err := decimal.NewFromString(m[1])
			if err != nil {
				continue
			}
			for j := i + 1; j < len(lines) && j < i+5; j++ {
				itemMatch := itemRefPattern.FindStringSubmatch(lines[j])
				if itemMatch == nil {
					continue
				}
				coupon.Items = append(coupon.Items, domain.CouponItem{
					ItemCode:       itemMatch[1],
					Description:    descriptionBetween(lines, i+1, j),
					DiscountAmount: decimal.NullDecimal{Decimal: discount, Valid: true},
				})
				i = j
				break
			}
			continue
		}

		// Standalone "Item 1234567": scan backwards for price and discount.
		if m := itemRefPattern.FindStringSubmatch(line); m != nil {
			item := domain.CouponItem{
				ItemCode:    m[1],
				Description: descriptionBefore(lines, i),
			}
			for j := max(0, i-5); j < i; j++ {
				if dm := discountOffPattern.FindStringSubmatch(lines[j]); dm != nil {
					if discount, err := decimal.NewFromString(dm[1]); err == nil {
						item.DiscountAmount = decimal.NullDecimal{Decimal: discount, Valid: true}
					}
					continue
				}
				if pm := plainPricePattern.FindStringSubmatch(lines[j]); pm != nil {
					if price, err := decimal.NewFromString(pm[1]); err == nil && price.IsPositive() {
						item.SalePrice = decimal.NullDecimal{Decimal: price, Valid: true}
					}
				}
			}
			coupon.Items = append(coupon.Items, item)
		}
	}

	return coupon
}

// ValidateCoupon checks a parsed or client-supplied coupon before it is
// persisted. Errors wrap apperrors.ErrValidation.
func ValidateCoupon(coupon domain.Coupon) error {
	var problems []string

	if coupon.ValidUntil.IsZero() {
		problems = append(problems, "valid until date is required")
	}
	if len(coupon.Items) == 0 {
		problems = append(problems, "at least one item is required")
	}
	for i, item := range coupon.Items {
		if len(item.ItemCode) < 4 {
			problems = append(problems, fmt.Sprintf("item %d: item number must be at least 4 digits", i+1))
		}
		if !item.HasSalePrice() && !item.HasDiscount() {
			problems = append(problems, fmt.Sprintf("item %d: must have either a sale price or discount amount", i+1))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrValidation, strings.Join(problems, "; "))
	}
	return nil
}

func extractValidFrom(text string, today domain.Date) domain.Date {
	if m := namedWindowPattern.FindStringSubmatch(text); m != nil {
		if month, ok := monthsByName[strings.ToLower(m[1])]; ok {
			if day, err := strconv.Atoi(m[2]); err == nil {
				if year, err := strconv.Atoi(m[5]); err == nil {
					if date, ok := parseNumericDate(strconv.Itoa(month), strconv.Itoa(day), strconv.Itoa(year)); ok {
						return date
					}
				}
			}
		}
	}
	return today
}

func extractValidUntil(text string, today domain.Date) domain.Date {
	if m := namedWindowPattern.FindStringSubmatch(text); m != nil {
		if month, ok := monthsByName[strings.ToLower(m[3])]; ok {
			if day, err := strconv.Atoi(m[4]); err == nil {
				if year, err := strconv.Atoi(m[5]); err == nil {
					if date, ok := parseNumericDate(strconv.Itoa(month), strconv.Itoa(day), strconv.Itoa(year)); ok {
						return date
					}
				}
			}
		}
	}

	// Fall back to a numeric date on any validity line.
	for _, line := range nonEmptyLines(text) {
		if !validThruKeyword.MatchString(line) && !validKeyword.MatchString(line) {
			continue
		}
		dates := datePattern.FindAllStringSubmatch(line, -1)
		if len(dates) == 0 {
			continue
		}
		last := dates[len(dates)-1]
		if date, ok := parseNumericDate(last[1], last[2], last[3]); ok {
			return date
		}
	}

	return today.AddDays(30)
}

func descriptionBetween(lines []string, from, to int) string {
	var parts []string
	for k := from; k < to; k++ {
		candidate := strings.TrimSpace(itemRefPattern.ReplaceAllString(lines[k], ""))
		if candidate != "" && !limitOrNumberLine.MatchString(candidate) {
			parts = append(parts, candidate)
		}
	}
	description := strings.Join(parts, " ")
	if description == "" {
		return "Unknown Item"
	}
	return description
}

func descriptionBefore(lines []string, itemLine int) string {
	var parts []string
	for k := max(0, itemLine-3); k < itemLine; k++ {
		candidate := lines[k]
		if idx := strings.Index(candidate, "$"); idx >= 0 {
			candidate = candidate[:idx]
		}
		candidate = strings.TrimSpace(itemRefPattern.ReplaceAllString(candidate, ""))
		if len(candidate) > 2 && !limitOrNumberLine.MatchString(candidate) {
			parts = append(parts, candidate)
		}
	}
	description := strings.Join(parts, " ")
	if description == "" {
		return "Unknown Item"
	}
	return description
}
