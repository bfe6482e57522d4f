package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate is a one-directional conversion factor between two currencies:
// amount_in_to = amount_in_from * Rate. Rates are not guaranteed symmetric or
// transitive; only pairs explicitly stored (in either direction) are usable.
type CurrencyRate struct {
	RateID           string          `json:"rateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	AuditFields
}
