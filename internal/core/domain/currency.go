package domain

// Currency represents a currency the store can display prices in.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g. "USD"
	Symbol       string `json:"symbol"`       // e.g. "$"
	Name         string `json:"name"`         // e.g. "US Dollar"
	Precision    int    `json:"precision"`    // display decimal places, e.g. 2 for USD, 0 for JPY
	AuditFields
}
