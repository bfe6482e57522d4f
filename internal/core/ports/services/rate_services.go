package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
	"github.com/safarnama/travel_booking_app/internal/dto"
)

// RateReaderSvc defines read operations for conversion rate data
type RateReaderSvc interface {
	// GetRate resolves the rate for a pair: a directly stored row wins,
	// otherwise the reciprocal of the reverse row is returned.
	GetRate(ctx context.Context, fromCode, toCode string) (*domain.CurrencyRate, error)

	// ListRates retrieves every stored rate row.
	ListRates(ctx context.Context) ([]domain.CurrencyRate, error)
}

// RateWriterSvc defines write operations for conversion rate data
type RateWriterSvc interface {
	// CreateCurrencyRate validates and persists (or refreshes) a rate.
	CreateCurrencyRate(ctx context.Context, req dto.CreateCurrencyRateRequest, creatorUserID string) (*domain.CurrencyRate, error)
}

// RateSvcFacade combines all rate-related service interfaces
type RateSvcFacade interface {
	RateReaderSvc
	RateWriterSvc
}

// ConverterSvc converts amounts between currencies against an in-memory
// snapshot of the rate table. Convert never returns an error: unresolvable
// pairs degrade to the original amount with NoRateAvailable set.
type ConverterSvc interface {
	Convert(amount decimal.Decimal, fromCode, toCode string) domain.Conversion

	// Reload refreshes the in-memory snapshot from the store. A load failure
	// is logged and leaves the previous snapshot in place.
	Reload(ctx context.Context) error
}
