package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
	portsrepo "github.com/safarnama/travel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
	"github.com/safarnama/travel_booking_app/internal/platform/metrics"
)

// converterService answers conversions from an in-memory snapshot of the
// rate table so the hot pricing path never touches the database. The
// snapshot is swapped atomically by Reload; a failed reload keeps the
// previous snapshot serving.
type converterService struct {
	rateRepo portsrepo.CurrencyRateReader
	metrics  *metrics.BookingMetrics

	mu    sync.RWMutex
	rates map[string]decimal.Decimal // key "FROM:TO"
}

// NewConverterService creates the converter. The snapshot starts empty;
// call Reload before serving traffic.
func NewConverterService(rateRepo portsrepo.CurrencyRateReader, m *metrics.BookingMetrics) portssvc.ConverterSvc {
	return &converterService{
		rateRepo: rateRepo,
		metrics:  m,
		rates:    map[string]decimal.Decimal{},
	}
}

func pairKey(fromCode, toCode string) string {
	return fromCode + ":" + toCode
}

// Convert converts amount from one currency to another. Resolution order:
// same currency, directly stored rate, reciprocal of the reverse rate. When
// none applies the original amount is returned with NoRateAvailable set.
func (s *converterService) Convert(amount decimal.Decimal, fromCode, toCode string) domain.Conversion {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)

	conv := domain.Conversion{
		OriginalAmount:   amount,
		Amount:           amount,
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             decimal.NewFromInt(1),
	}

	if fromCode == toCode {
		s.metrics.RecordConversion("identity")
		return conv
	}

	rate, inverse, ok := s.lookup(fromCode, toCode)
	if !ok {
		conv.NoRateAvailable = true
		s.metrics.RecordConversion("no_rate")
		return conv
	}

	if inverse {
		// Divide by the stored rate directly. Multiplying by a rounded
		// reciprocal would drift: 1/3 truncates, so 300 * (1/3) != 100.
		// The reported rate is the (rounded) reciprocal, display only.
		conv.Rate = decimal.NewFromInt(1).Div(rate)
		conv.Amount = amount.Div(rate)
	} else {
		conv.Rate = rate
		conv.Amount = amount.Mul(rate)
	}
	s.metrics.RecordConversion("converted")
	return conv
}

// lookup resolves the stored rate for a pair. inverse is true when only the
// reverse row exists; rate is then the reverse row's value, and the caller
// divides by it instead of multiplying.
func (s *converterService) lookup(fromCode, toCode string) (rate decimal.Decimal, inverse, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if direct, found := s.rates[pairKey(fromCode, toCode)]; found {
		return direct, false, true
	}
	if reverse, found := s.rates[pairKey(toCode, fromCode)]; found && reverse.IsPositive() {
		return reverse, true, true
	}
	return decimal.Decimal{}, false, false
}

// Reload replaces the snapshot with the current rate table. On error the
// previous snapshot stays in place and keeps serving.
func (s *converterService) Reload(ctx context.Context) error {
	stored, err := s.rateRepo.ListCurrencyRates(ctx)
	if err != nil {
		return fmt.Errorf("failed to load rate snapshot: %w", err)
	}

	fresh := make(map[string]decimal.Decimal, len(stored))
	for _, r := range stored {
		if !r.Rate.IsPositive() {
			continue
		}
		fresh[pairKey(strings.ToUpper(r.FromCurrencyCode), strings.ToUpper(r.ToCurrencyCode))] = r.Rate
	}

	s.mu.Lock()
	s.rates = fresh
	s.mu.Unlock()
	return nil
}
