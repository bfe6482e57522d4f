package repositories

import (
	"context"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
)

// CurrencyRateReader defines read operations for conversion rate data
type CurrencyRateReader interface {
	// ListCurrencyRates retrieves every stored rate row; the converter builds
	// its in-memory snapshot from these.
	ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error)

	// FindLatestRate retrieves the stored rate for the exact direction
	// (from, to). Inversion of reverse pairs is the service layer's job.
	FindLatestRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.CurrencyRate, error)
}

// CurrencyRateWriter defines write operations for conversion rate data
type CurrencyRateWriter interface {
	// UpsertCurrencyRate inserts a rate row or updates the existing row for
	// the same directed pair. Used by the scheduled feed updater.
	UpsertCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error
}

// CurrencyRateRepositoryFacade combines all rate-related repository interfaces
type CurrencyRateRepositoryFacade interface {
	CurrencyRateReader
	CurrencyRateWriter
}
