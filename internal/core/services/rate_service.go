package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/safarnama/travel_booking_app/internal/apperrors"
	"github.com/safarnama/travel_booking_app/internal/core/domain"
	portsrepo "github.com/safarnama/travel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
	"github.com/safarnama/travel_booking_app/internal/dto"
)

type rateService struct {
	rateRepo     portsrepo.CurrencyRateRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewRateService creates the conversion rate service.
func NewRateService(rateRepo portsrepo.CurrencyRateRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.RateSvcFacade {
	return &rateService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
	}
}

func (s *rateService) CreateCurrencyRate(ctx context.Context, req dto.CreateCurrencyRateRequest, creatorUserID string) (*domain.CurrencyRate, error) {
	fromCode := strings.ToUpper(req.FromCurrencyCode)
	toCode := strings.ToUpper(req.ToCurrencyCode)

	if fromCode == toCode {
		return nil, apperrors.NewValidationError("from and to currencies cannot be the same")
	}
	if !req.Rate.IsPositive() {
		return nil, apperrors.NewValidationError("rate must be greater than zero")
	}

	// Both sides of the pair must be known currencies.
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, fromCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("unknown currency " + fromCode)
		}
		return nil, fmt.Errorf("failed to validate from currency: %w", err)
	}
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, toCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("unknown currency " + toCode)
		}
		return nil, fmt.Errorf("failed to validate to currency: %w", err)
	}

	now := time.Now()
	rate := domain.CurrencyRate{
		RateID:           uuid.NewString(),
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             req.Rate,
		UpdatedAt:        now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.UpsertCurrencyRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to create currency rate in service: %w", err)
	}

	return &rate, nil
}

// GetRate resolves the rate for a directed pair. A stored row for the exact
// direction wins; otherwise the reciprocal of the reverse row is synthesized.
func (s *rateService) GetRate(ctx context.Context, fromCode, toCode string) (*domain.CurrencyRate, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)

	if fromCode == toCode {
		return nil, apperrors.NewValidationError("from and to currencies cannot be the same")
	}

	rate, err := s.rateRepo.FindLatestRate(ctx, fromCode, toCode)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get rate in service: %w", err)
	}

	reverse, err := s.rateRepo.FindLatestRate(ctx, toCode, fromCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("no rate available for " + fromCode + " to " + toCode)
		}
		return nil, fmt.Errorf("failed to get reverse rate in service: %w", err)
	}

	// The synthesized reciprocal is a display value; conversions divide by
	// the stored row (see converterService.Convert) so they stay exact even
	// for non-terminating reciprocals like 1/3. DivRound keeps the reported
	// number as close as a 28-digit decimal can get.
	inverted := domain.CurrencyRate{
		RateID:           reverse.RateID,
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             decimal.NewFromInt(1).DivRound(reverse.Rate, 28),
		UpdatedAt:        reverse.UpdatedAt,
		AuditFields:      reverse.AuditFields,
	}
	return &inverted, nil
}

func (s *rateService) ListRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	rates, err := s.rateRepo.ListCurrencyRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates in service: %w", err)
	}
	if rates == nil {
		return []domain.CurrencyRate{}, nil
	}
	return rates, nil
}
