package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
	portsrepo "github.com/safarnama/travel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
	"github.com/safarnama/travel_booking_app/internal/core/services"
	"github.com/safarnama/travel_booking_app/internal/platform/metrics"
)

// testMetrics is shared across the package: promauto collectors register on
// the default registry and may only be created once per test binary.
var testMetrics = metrics.NewBookingMetrics()

// --- Mock CurrencyRateReader ---
type MockRateReader struct {
	mock.Mock
}

func (m *MockRateReader) ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockRateReader) FindLatestRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, fromCurrencyCode, toCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

var _ portsrepo.CurrencyRateReader = (*MockRateReader)(nil)

// --- Test Suite ---
type ConverterServiceTestSuite struct {
	suite.Suite
	mockRateReader *MockRateReader
	converter      portssvc.ConverterSvc
}

func (suite *ConverterServiceTestSuite) SetupTest() {
	suite.mockRateReader = new(MockRateReader)
	suite.converter = services.NewConverterService(suite.mockRateReader, testMetrics)
}

func (suite *ConverterServiceTestSuite) loadRates(rates []domain.CurrencyRate) {
	suite.mockRateReader.On("ListCurrencyRates", mock.Anything).Return(rates, nil).Once()
	suite.Require().NoError(suite.converter.Reload(context.Background()))
}

func rateRow(from, to string, rate string) domain.CurrencyRate {
	return domain.CurrencyRate{
		RateID:           from + "-" + to,
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             decimal.RequireFromString(rate),
		UpdatedAt:        time.Now(),
	}
}

func (suite *ConverterServiceTestSuite) TestConvert_SameCurrencyIsIdentity() {
	suite.loadRates(nil)

	amount := decimal.RequireFromString("123.45")
	conv := suite.converter.Convert(amount, "USD", "USD")

	suite.True(conv.Amount.Equal(amount))
	suite.False(conv.NoRateAvailable)
	suite.Equal("USD", conv.FromCurrencyCode)
	suite.Equal("USD", conv.ToCurrencyCode)
}

func (suite *ConverterServiceTestSuite) TestConvert_DirectRateMultiplies() {
	suite.loadRates([]domain.CurrencyRate{rateRow("USD", "INR", "83.5")})

	conv := suite.converter.Convert(decimal.NewFromInt(10), "USD", "INR")

	suite.True(conv.Amount.Equal(decimal.RequireFromString("835")))
	suite.True(conv.Rate.Equal(decimal.RequireFromString("83.5")))
	suite.False(conv.NoRateAvailable)
}

func (suite *ConverterServiceTestSuite) TestConvert_ReverseRateDivides() {
	// Only USD->EUR stored; converting EUR->USD must use the reciprocal.
	suite.loadRates([]domain.CurrencyRate{rateRow("USD", "EUR", "0.5")})

	conv := suite.converter.Convert(decimal.NewFromInt(100), "EUR", "USD")

	suite.True(conv.Amount.Equal(decimal.NewFromInt(200)))
	suite.False(conv.NoRateAvailable)
}

func (suite *ConverterServiceTestSuite) TestConvert_ReverseRateDividesExactly() {
	// A rate whose reciprocal does not terminate (1/3 = 0.333...). Dividing
	// by the stored rate must give x/k exactly; multiplying by a truncated
	// reciprocal would yield 99.99999999999999.
	suite.loadRates([]domain.CurrencyRate{rateRow("USD", "XXX", "3")})

	conv := suite.converter.Convert(decimal.NewFromInt(300), "XXX", "USD")

	suite.True(conv.Amount.Equal(decimal.NewFromInt(100)),
		"want exactly 100, got %s", conv.Amount)
	suite.False(conv.NoRateAvailable)
}

func (suite *ConverterServiceTestSuite) TestConvert_DirectRowWinsOverInversion() {
	suite.loadRates([]domain.CurrencyRate{
		rateRow("USD", "EUR", "0.5"),
		rateRow("EUR", "USD", "1.9"), // deliberately not 1/0.5
	})

	conv := suite.converter.Convert(decimal.NewFromInt(100), "EUR", "USD")

	suite.True(conv.Amount.Equal(decimal.NewFromInt(190)))
}

func (suite *ConverterServiceTestSuite) TestConvert_NoRateKeepsAmountAndFlags() {
	suite.loadRates([]domain.CurrencyRate{rateRow("USD", "INR", "83.5")})

	amount := decimal.RequireFromString("42.42")
	conv := suite.converter.Convert(amount, "GBP", "JPY")

	suite.True(conv.Amount.Equal(amount))
	suite.True(conv.NoRateAvailable)
	// The pair is preserved so a degraded result is distinguishable from a
	// genuine identity conversion.
	suite.Equal("GBP", conv.FromCurrencyCode)
	suite.Equal("JPY", conv.ToCurrencyCode)
}

func (suite *ConverterServiceTestSuite) TestConvert_LowercaseCodesNormalized() {
	suite.loadRates([]domain.CurrencyRate{rateRow("USD", "INR", "80")})

	conv := suite.converter.Convert(decimal.NewFromInt(2), "usd", "inr")

	suite.True(conv.Amount.Equal(decimal.NewFromInt(160)))
	suite.Equal("USD", conv.FromCurrencyCode)
}

func (suite *ConverterServiceTestSuite) TestReload_FailureKeepsPreviousSnapshot() {
	suite.loadRates([]domain.CurrencyRate{rateRow("USD", "INR", "80")})

	suite.mockRateReader.On("ListCurrencyRates", mock.Anything).
		Return(nil, errors.New("db down")).Once()
	err := suite.converter.Reload(context.Background())
	suite.Error(err)

	// Old snapshot still serves.
	conv := suite.converter.Convert(decimal.NewFromInt(1), "USD", "INR")
	suite.True(conv.Amount.Equal(decimal.NewFromInt(80)))
}

func (suite *ConverterServiceTestSuite) TestConvert_EmptySnapshotDegradesEverything() {
	suite.loadRates(nil)

	conv := suite.converter.Convert(decimal.NewFromInt(7), "USD", "INR")

	suite.True(conv.NoRateAvailable)
	suite.True(conv.Amount.Equal(decimal.NewFromInt(7)))
}

func TestConverterServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConverterServiceTestSuite))
}
