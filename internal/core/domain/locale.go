package domain

// VisitorLocale is the per-session currency preference derived from IP
// geolocation. Detected is false when the fallback currency was used because
// detection failed or the country has no mapped currency.
type VisitorLocale struct {
	CountryCode  string `json:"countryCode,omitempty"`
	CurrencyCode string `json:"currencyCode"`
	Detected     bool   `json:"detected"`
}
