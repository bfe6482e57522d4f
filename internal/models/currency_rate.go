package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyRate stores one directed conversion factor between two currencies.
type CurrencyRate struct {
	RateID           string          `json:"rateID"`           // Primary Key (UUID)
	FromCurrencyCode string          `json:"fromCurrencyCode"` // FK -> Currency.currencyCode
	ToCurrencyCode   string          `json:"toCurrencyCode"`   // FK -> Currency.currencyCode
	Rate             decimal.Decimal `json:"rate"`
	UpdatedAt        time.Time       `json:"updatedAt"` // last feed refresh
	AuditFields
}
