package services

import (
	"context"
	"strings"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
	"github.com/safarnama/travel_booking_app/internal/middleware"
	"github.com/safarnama/travel_booking_app/internal/platform/geoip"
)

// countryCurrency maps ISO country codes to the currency quoted to visitors
// from there. Countries outside this table get the fallback currency.
var countryCurrency = map[string]string{
	"IN": "INR",
	"US": "USD",
	"GB": "GBP",
	"AU": "AUD",
	"CA": "CAD",
	"SG": "SGD",
	"AE": "AED",
	"JP": "JPY",
	"CH": "CHF",
	"NZ": "NZD",
	// Eurozone
	"AT": "EUR", "BE": "EUR", "DE": "EUR", "ES": "EUR", "FI": "EUR",
	"FR": "EUR", "GR": "EUR", "IE": "EUR", "IT": "EUR", "NL": "EUR",
	"PT": "EUR",
}

type localeService struct {
	geoClient        *geoip.Client
	fallbackCurrency string
}

// NewLocaleService creates the visitor locale detection service.
func NewLocaleService(geoClient *geoip.Client, fallbackCurrency string) portssvc.LocaleSvcFacade {
	return &localeService{
		geoClient:        geoClient,
		fallbackCurrency: strings.ToUpper(fallbackCurrency),
	}
}

// DetectCurrency resolves the visitor's currency from their IP. Lookup
// failures and unmapped countries degrade to the fallback currency; the
// pricing path must never fail because geolocation did.
func (s *localeService) DetectCurrency(ctx context.Context, ip string) domain.VisitorLocale {
	fallback := domain.VisitorLocale{
		CurrencyCode: s.fallbackCurrency,
		Detected:     false,
	}

	if ip == "" {
		return fallback
	}

	location, err := s.geoClient.Lookup(ctx, ip)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("geoip lookup failed, using fallback currency",
			"ip", ip, "error", err)
		return fallback
	}

	countryCode := strings.ToUpper(location.CountryCode)
	currencyCode, ok := countryCurrency[countryCode]
	if !ok {
		fallback.CountryCode = countryCode
		return fallback
	}

	return domain.VisitorLocale{
		CountryCode:  countryCode,
		CurrencyCode: currencyCode,
		Detected:     true,
	}
}
