// Package moneyfmt renders prices for display: a currency symbol followed by
// the amount with locale digit grouping and the currency's display precision.
package moneyfmt

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
)

// printer applies en-style digit grouping (1,234,567.89). The storefront
// fixes this grouping rule up front rather than varying it per visitor.
var printer = message.NewPrinter(language.English)

// Format renders an amount in the given currency, e.g. 1234.5 INR -> "₹1,234.50".
// The amount is rounded to the currency's display precision first. Digits are
// taken from the decimal itself, never a float, so arbitrarily large prices
// render exactly.
func Format(amount decimal.Decimal, currency domain.Currency) string {
	symbol := currency.Symbol
	if symbol == "" {
		// Unmapped currencies fall back to the code itself.
		symbol = currency.CurrencyCode
	}

	fixed := amount.StringFixed(int32(currency.Precision))

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(fixed, ".")
	grouped := groupDigits(intPart)
	if hasFrac {
		grouped += "." + fracPart
	}

	return symbol + sign + grouped
}

// FormatCode renders an amount when only the currency code is known, using
// the code as the symbol and two decimal places.
func FormatCode(amount decimal.Decimal, currencyCode string) string {
	return Format(amount, domain.Currency{CurrencyCode: currencyCode, Precision: 2})
}

// groupDigits inserts en-locale grouping into a bare digit string. Values
// that fit an int64 go through the x/text printer; anything larger is
// grouped by hand, since the printer's numeric inputs stop at 64 bits.
func groupDigits(digits string) string {
	if n, err := strconv.ParseInt(digits, 10, 64); err == nil {
		return printer.Sprint(number.Decimal(n))
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
