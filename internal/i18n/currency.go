// Package i18n renders donation amounts for display: currency symbol,
// locale-aware grouping separators, no fraction digits (₹12,345).
package i18n

import (
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale matches the platform's primary market.
const DefaultLocale = "en-IN"

// Formatter formats amounts in a fixed platform currency for a per-request
// display locale.
type Formatter struct {
	fallback language.Tag
	unit     currency.Unit
}

// NewFormatter builds a formatter for the given default locale and ISO 4217
// currency code. Unparsable inputs fall back to en-IN / INR.
func NewFormatter(locale, currencyCode string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		unit = currency.INR
	}
	return Formatter{fallback: tag, unit: unit}
}

// Display renders the amount for the given locale, rounding away fraction
// digits. An empty or unparsable locale uses the formatter's default.
func (f Formatter) Display(locale string, amount float64) string {
	tag := f.fallback
	if locale != "" {
		if parsed, err := language.Parse(locale); err == nil {
			tag = parsed
		}
	}
	p := message.NewPrinter(tag)
	return symbolFor(f.unit) + p.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}

// symbolFor returns the narrow symbol for the currencies the platform
// displays. The x/text currency formatter couples symbol and fraction-digit
// rendering, and the dashboard shows whole-rupee amounts, so the symbol is
// resolved here and the numeric part goes through the locale-aware decimal
// formatter.
func symbolFor(unit currency.Unit) string {
	switch unit {
	case currency.INR:
		return "₹"
	case currency.USD:
		return "$"
	case currency.EUR:
		return "€"
	case currency.GBP:
		return "£"
	case currency.IDR:
		return "Rp"
	}
	return unit.String() + " "
}
