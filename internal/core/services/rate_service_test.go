package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/safarnama/travel_booking_app/internal/apperrors"
	"github.com/safarnama/travel_booking_app/internal/core/domain"
	portsrepo "github.com/safarnama/travel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
	"github.com/safarnama/travel_booking_app/internal/core/services"
	"github.com/safarnama/travel_booking_app/internal/dto"
)

// --- Mock CurrencyRateRepositoryFacade ---
type MockRateRepo struct {
	mock.Mock
}

func (m *MockRateRepo) ListCurrencyRates(ctx context.Context) ([]domain.CurrencyRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyRate), args.Error(1)
}

func (m *MockRateRepo) FindLatestRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string) (*domain.CurrencyRate, error) {
	args := m.Called(ctx, fromCurrencyCode, toCurrencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyRate), args.Error(1)
}

func (m *MockRateRepo) UpsertCurrencyRate(ctx context.Context, rate domain.CurrencyRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

var _ portsrepo.CurrencyRateRepositoryFacade = (*MockRateRepo)(nil)

// --- Mock CurrencyRepositoryFacade ---
type MockCurrencyRepo struct {
	mock.Mock
}

func (m *MockCurrencyRepo) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepo) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepo) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepo)(nil)

// --- Test Suite ---
type RateServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockRateRepo
	mockCurrencyRepo *MockCurrencyRepo
	service          portssvc.RateSvcFacade
}

func (suite *RateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockRateRepo)
	suite.mockCurrencyRepo = new(MockCurrencyRepo)
	suite.service = services.NewRateService(suite.mockRateRepo, suite.mockCurrencyRepo)
}

func currencyRow(code string) *domain.Currency {
	return &domain.Currency{CurrencyCode: code, Symbol: code, Name: code, Precision: 2}
}

func (suite *RateServiceTestSuite) TestGetRate_DirectRowWins() {
	stored := &domain.CurrencyRate{
		FromCurrencyCode: "USD", ToCurrencyCode: "INR",
		Rate: decimal.RequireFromString("83.5"), UpdatedAt: time.Now(),
	}
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "USD", "INR").Return(stored, nil).Once()

	rate, err := suite.service.GetRate(context.Background(), "usd", "inr")

	suite.NoError(err)
	suite.True(rate.Rate.Equal(decimal.RequireFromString("83.5")))
}

func (suite *RateServiceTestSuite) TestGetRate_FallsBackToReciprocal() {
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "EUR", "USD").
		Return(nil, apperrors.NewNotFoundError("no rate")).Once()
	reverse := &domain.CurrencyRate{
		FromCurrencyCode: "USD", ToCurrencyCode: "EUR",
		Rate: decimal.RequireFromString("0.5"), UpdatedAt: time.Now(),
	}
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "USD", "EUR").Return(reverse, nil).Once()

	rate, err := suite.service.GetRate(context.Background(), "EUR", "USD")

	suite.NoError(err)
	suite.True(rate.Rate.Equal(decimal.NewFromInt(2)))
	suite.Equal("EUR", rate.FromCurrencyCode)
	suite.Equal("USD", rate.ToCurrencyCode)
}

func (suite *RateServiceTestSuite) TestGetRate_ReciprocalCarries28Digits() {
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "XXX", "USD").
		Return(nil, apperrors.NewNotFoundError("no rate")).Once()
	reverse := &domain.CurrencyRate{
		FromCurrencyCode: "USD", ToCurrencyCode: "XXX",
		Rate: decimal.RequireFromString("3"), UpdatedAt: time.Now(),
	}
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "USD", "XXX").Return(reverse, nil).Once()

	rate, err := suite.service.GetRate(context.Background(), "XXX", "USD")

	suite.NoError(err)
	// 1/3 cannot terminate; the display value carries 28 digits rather than
	// the shorter default division precision.
	suite.True(rate.Rate.Equal(decimal.RequireFromString("0.3333333333333333333333333333")),
		"got %s", rate.Rate)
}

func (suite *RateServiceTestSuite) TestGetRate_NeitherDirectionStored() {
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "GBP", "JPY").
		Return(nil, apperrors.NewNotFoundError("no rate")).Once()
	suite.mockRateRepo.On("FindLatestRate", mock.Anything, "JPY", "GBP").
		Return(nil, apperrors.NewNotFoundError("no rate")).Once()

	rate, err := suite.service.GetRate(context.Background(), "GBP", "JPY")

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *RateServiceTestSuite) TestGetRate_SamePairRejected() {
	rate, err := suite.service.GetRate(context.Background(), "USD", "USD")

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestCreateCurrencyRate_Valid() {
	req := dto.CreateCurrencyRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "INR",
		Rate:             decimal.RequireFromString("83.5"),
	}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "USD").Return(currencyRow("USD"), nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "INR").Return(currencyRow("INR"), nil).Once()
	suite.mockRateRepo.On("UpsertCurrencyRate", mock.Anything, mock.MatchedBy(func(r domain.CurrencyRate) bool {
		return r.FromCurrencyCode == "USD" && r.ToCurrencyCode == "INR" && r.Rate.Equal(req.Rate)
	})).Return(nil).Once()

	rate, err := suite.service.CreateCurrencyRate(context.Background(), req, "admin-1")

	suite.NoError(err)
	suite.NotEmpty(rate.RateID)
	suite.Equal("admin-1", rate.CreatedBy)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *RateServiceTestSuite) TestCreateCurrencyRate_NonPositiveRate() {
	req := dto.CreateCurrencyRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "INR",
		Rate:             decimal.Zero,
	}

	rate, err := suite.service.CreateCurrencyRate(context.Background(), req, "admin-1")

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestCreateCurrencyRate_SamePair() {
	req := dto.CreateCurrencyRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "USD",
		Rate:             decimal.NewFromInt(1),
	}

	rate, err := suite.service.CreateCurrencyRate(context.Background(), req, "admin-1")

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *RateServiceTestSuite) TestCreateCurrencyRate_UnknownCurrency() {
	req := dto.CreateCurrencyRateRequest{
		FromCurrencyCode: "XXX",
		ToCurrencyCode:   "INR",
		Rate:             decimal.NewFromInt(1),
	}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", mock.Anything, "XXX").
		Return(nil, apperrors.NewNotFoundError("currency not found")).Once()

	rate, err := suite.service.CreateCurrencyRate(context.Background(), req, "admin-1")

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RateServiceTestSuite))
}
