package services

import (
	"context"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
)

// LocaleSvcFacade guesses a visitor's preferred currency from their IP
// address. DetectCurrency never returns an error: detection failures fall
// back to the configured fallback currency with Detected unset.
type LocaleSvcFacade interface {
	DetectCurrency(ctx context.Context, ip string) domain.VisitorLocale
}
