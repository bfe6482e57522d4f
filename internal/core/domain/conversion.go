package domain

import "github.com/shopspring/decimal"

// Conversion is the result of a price conversion. When no rate is known for
// the pair, Amount equals OriginalAmount and NoRateAvailable is set, so
// callers can distinguish "no conversion available" from a genuine identity
// conversion instead of comparing amounts.
type Conversion struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	Amount           decimal.Decimal `json:"amount"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	NoRateAvailable  bool            `json:"noRateAvailable"`
}
