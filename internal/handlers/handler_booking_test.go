package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/safarnama/travel_booking_app/internal/apperrors"
	"github.com/safarnama/travel_booking_app/internal/core/domain"
	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
	"github.com/safarnama/travel_booking_app/internal/dto"
	"github.com/safarnama/travel_booking_app/internal/middleware"
)

// --- Mock BookingService ---
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingService) ListBookings(ctx context.Context, status *domain.BookingStatus) ([]domain.Booking, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingService) ConfirmPayment(ctx context.Context, req dto.ConfirmPaymentRequest) (*dto.ConfirmPaymentOutcome, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConfirmPaymentOutcome), args.Error(1)
}

var _ portssvc.BookingSvcFacade = (*MockBookingService)(nil)

// --- Test Suite ---
type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockBookingService
	jwtSecret   string
}

func (suite *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockService = new(MockBookingService)

	confirm := suite.router.Group("/api/v1")
	admin := suite.router.Group("/api/v1", middleware.AuthMiddleware(suite.jwtSecret))
	registerBookingRoutes(confirm, admin, suite.mockService)
}

func (suite *BookingHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "tba-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *BookingHandlerTestSuite) postConfirm(body dto.ConfirmPaymentRequest) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/bookings/confirm-payment", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *BookingHandlerTestSuite) TestConfirmPayment_Success() {
	bookingID := uuid.NewString()
	reqBody := dto.ConfirmPaymentRequest{
		PaymentID:     "pay_1",
		PaymentMethod: "gateway-b",
		BookingID:     bookingID,
		SessionID:     "cs_1",
	}
	suite.mockService.On("ConfirmPayment", mock.Anything, reqBody).
		Return(&dto.ConfirmPaymentOutcome{BookingID: bookingID, PaymentReference: "pi_1"}, nil).Once()

	w := suite.postConfirm(reqBody)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConfirmPaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.Equal(bookingID, resp.BookingID)
	suite.False(resp.AlreadyConfirmed)
}

func (suite *BookingHandlerTestSuite) TestConfirmPayment_ReplayReturnsAlreadyConfirmed() {
	bookingID := uuid.NewString()
	reqBody := dto.ConfirmPaymentRequest{
		PaymentID:     "pay_1",
		PaymentMethod: "gateway-a",
		BookingID:     bookingID,
	}
	suite.mockService.On("ConfirmPayment", mock.Anything, reqBody).
		Return(&dto.ConfirmPaymentOutcome{BookingID: bookingID, AlreadyConfirmed: true}, nil).Once()

	w := suite.postConfirm(reqBody)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ConfirmPaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.True(resp.AlreadyConfirmed)
}

func (suite *BookingHandlerTestSuite) TestConfirmPayment_VerificationFailureIs402() {
	reqBody := dto.ConfirmPaymentRequest{
		PaymentID:     "pay_1",
		PaymentMethod: "gateway-b",
		BookingID:     uuid.NewString(),
		SessionID:     "cs_1",
	}
	suite.mockService.On("ConfirmPayment", mock.Anything, reqBody).
		Return(nil, apperrors.ErrVerificationFailed).Once()

	w := suite.postConfirm(reqBody)

	suite.Equal(http.StatusPaymentRequired, w.Code)
	var resp dto.ConfirmPaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.NotEmpty(resp.Error)
}

func (suite *BookingHandlerTestSuite) TestConfirmPayment_GatewayUnreachableIs502() {
	reqBody := dto.ConfirmPaymentRequest{
		PaymentID:     "pay_1",
		PaymentMethod: "gateway-b",
		BookingID:     uuid.NewString(),
		SessionID:     "cs_1",
	}
	suite.mockService.On("ConfirmPayment", mock.Anything, reqBody).
		Return(nil, apperrors.ErrGatewayUnavailable).Once()

	w := suite.postConfirm(reqBody)

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *BookingHandlerTestSuite) TestConfirmPayment_UnknownBookingIs404() {
	reqBody := dto.ConfirmPaymentRequest{
		PaymentID:     "pay_1",
		PaymentMethod: "gateway-a",
		BookingID:     uuid.NewString(),
	}
	suite.mockService.On("ConfirmPayment", mock.Anything, reqBody).
		Return(nil, apperrors.NewNotFoundError("booking not found")).Once()

	w := suite.postConfirm(reqBody)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *BookingHandlerTestSuite) TestConfirmPayment_UnexpectedErrorHidesDetails() {
	reqBody := dto.ConfirmPaymentRequest{
		PaymentID:     "pay_1",
		PaymentMethod: "gateway-a",
		BookingID:     uuid.NewString(),
	}
	suite.mockService.On("ConfirmPayment", mock.Anything, reqBody).
		Return(nil, errors.New("pq: connection reset by peer")).Once()

	w := suite.postConfirm(reqBody)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var resp dto.ConfirmPaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(internalErrorMessage, resp.Error)
	suite.NotContains(w.Body.String(), "connection reset")
}

func (suite *BookingHandlerTestSuite) TestConfirmPayment_InvalidMethodRejectedByBinding() {
	w := suite.postConfirm(dto.ConfirmPaymentRequest{
		PaymentID:     "pay_1",
		PaymentMethod: "gateway-c",
		BookingID:     uuid.NewString(),
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ConfirmPayment", mock.Anything, mock.Anything)
}

func (suite *BookingHandlerTestSuite) TestGetBooking_RequiresAuth() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/bookings/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *BookingHandlerTestSuite) TestGetBooking_Success() {
	bookingID := uuid.NewString()
	booking := &domain.Booking{
		BookingID:     bookingID,
		TourRef:       "SAFARI-KENYA-12",
		PaymentStatus: domain.PaymentStatusPaid,
		BookingStatus: domain.BookingStatusConfirmed,
	}
	suite.mockService.On("GetBookingByID", mock.Anything, bookingID).Return(booking, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/bookings/"+bookingID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.BookingResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("SAFARI-KENYA-12", resp.TourRef)
}

func (suite *BookingHandlerTestSuite) TestListBookings_InvalidStatusRejected() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/bookings?status=bogus", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "ListBookings", mock.Anything, mock.Anything)
}

func TestBookingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}
