package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/safarnama/travel_booking_app/internal/apperrors"
	"github.com/safarnama/travel_booking_app/internal/core/domain"
	portsrepo "github.com/safarnama/travel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
	"github.com/safarnama/travel_booking_app/internal/dto"
	"github.com/safarnama/travel_booking_app/internal/middleware"
	"github.com/safarnama/travel_booking_app/internal/platform/events"
	"github.com/safarnama/travel_booking_app/internal/platform/metrics"
	"github.com/safarnama/travel_booking_app/internal/platform/payments"
)

// CheckoutSessionVerifier retrieves checkout sessions from the hosted
// payment gateway for server-side verification.
type CheckoutSessionVerifier interface {
	GetCheckoutSession(ctx context.Context, sessionID string) (*payments.CheckoutSession, error)
}

type bookingService struct {
	bookingRepo           portsrepo.BookingRepositoryFacade
	gatewayB              CheckoutSessionVerifier
	publisher             events.Publisher
	metrics               *metrics.BookingMetrics
	gatewayATrustedCaller bool
}

// NewBookingService creates the booking service.
func NewBookingService(bookingRepo portsrepo.BookingRepositoryFacade, gatewayB CheckoutSessionVerifier, publisher events.Publisher, m *metrics.BookingMetrics, gatewayATrustedCaller bool) portssvc.BookingSvcFacade {
	return &bookingService{
		bookingRepo:           bookingRepo,
		gatewayB:              gatewayB,
		publisher:             publisher,
		metrics:               m,
		gatewayATrustedCaller: gatewayATrustedCaller,
	}
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking in service: %w", err)
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, status *domain.BookingStatus) ([]domain.Booking, error) {
	bookings, err := s.bookingRepo.ListBookings(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings in service: %w", err)
	}
	if bookings == nil {
		return []domain.Booking{}, nil
	}
	return bookings, nil
}

// ConfirmPayment verifies the payment with the gateway named in the request,
// then transitions the booking to paid+confirmed with a single conditional
// write. A replay against an already-confirmed booking succeeds with
// AlreadyConfirmed set and changes nothing.
func (s *bookingService) ConfirmPayment(ctx context.Context, req dto.ConfirmPaymentRequest) (*dto.ConfirmPaymentOutcome, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	method := domain.PaymentMethod(req.PaymentMethod)

	paymentReference, err := s.verifyPayment(ctx, method, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrVerificationFailed) {
			s.metrics.RecordConfirmation(req.PaymentMethod, "verification_failed")
		} else {
			s.metrics.RecordConfirmation(req.PaymentMethod, "gateway_error")
		}
		return nil, err
	}

	confirmedAt := time.Now()
	err = s.bookingRepo.ConfirmBookingPayment(ctx, req.BookingID, method, paymentReference, confirmedAt)
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyConfirmed) {
			s.metrics.RecordConfirmation(req.PaymentMethod, "already_confirmed")
			logger.Info("booking already confirmed, replay acknowledged",
				"booking_id", req.BookingID)
			return &dto.ConfirmPaymentOutcome{
				BookingID:        req.BookingID,
				AlreadyConfirmed: true,
			}, nil
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			s.metrics.RecordConfirmation(req.PaymentMethod, "not_found")
			return nil, err
		}
		s.metrics.RecordConfirmation(req.PaymentMethod, "error")
		return nil, fmt.Errorf("failed to record payment confirmation: %w", err)
	}

	s.metrics.RecordConfirmation(req.PaymentMethod, "confirmed")
	s.publishConfirmed(ctx, req.BookingID, method, paymentReference, confirmedAt)

	return &dto.ConfirmPaymentOutcome{
		BookingID:        req.BookingID,
		PaymentReference: paymentReference,
	}, nil
}

// verifyPayment returns the gateway-side payment reference on success,
// apperrors.ErrVerificationFailed when the gateway rejected the payment, and
// a plain wrapped error when the verification call itself failed (the caller
// may safely retry those).
func (s *bookingService) verifyPayment(ctx context.Context, method domain.PaymentMethod, req dto.ConfirmPaymentRequest) (string, error) {
	switch method {
	case domain.PaymentMethodGatewayA:
		// Gateway A offers no server-side lookup; the payment ID is taken on
		// trust, so only deployments that enabled the trusted-caller flag
		// may use it.
		if !s.gatewayATrustedCaller {
			return "", fmt.Errorf("%w: gateway-a confirmations are not accepted from untrusted callers", apperrors.ErrVerificationFailed)
		}
		if req.PaymentID == "" {
			return "", fmt.Errorf("%w: missing payment id", apperrors.ErrVerificationFailed)
		}
		return req.PaymentID, nil

	case domain.PaymentMethodGatewayB:
		if req.SessionID == "" {
			return "", fmt.Errorf("%w: missing checkout session id", apperrors.ErrVerificationFailed)
		}

		start := time.Now()
		session, err := s.gatewayB.GetCheckoutSession(ctx, req.SessionID)
		s.metrics.RecordVerificationDuration(string(method), time.Since(start).Seconds())
		if err != nil {
			return "", fmt.Errorf("%w: %w", apperrors.ErrGatewayUnavailable, err)
		}

		if session.PaymentStatus != "paid" {
			return "", fmt.Errorf("%w: checkout session status is %q", apperrors.ErrVerificationFailed, session.PaymentStatus)
		}

		reference := session.PaymentIntentID
		if reference == "" {
			reference = session.ID
		}
		return reference, nil

	default:
		return "", fmt.Errorf("%w: unsupported payment method %q", apperrors.ErrVerificationFailed, method)
	}
}

// publishConfirmed emits the confirmation event. Publishing is best-effort:
// a failure is logged and never rolls back the confirmation.
func (s *bookingService) publishConfirmed(ctx context.Context, bookingID string, method domain.PaymentMethod, paymentReference string, confirmedAt time.Time) {
	logger := middleware.GetLoggerFromCtx(ctx)

	event := events.BookingConfirmedEvent{
		BookingID:        bookingID,
		PaymentMethod:    string(method),
		PaymentReference: paymentReference,
		ConfirmedAt:      confirmedAt,
	}
	if booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID); err == nil {
		event.TourRef = booking.TourRef
		event.Amount = booking.Amount
		event.CurrencyCode = booking.CurrencyCode
	}

	if err := s.publisher.PublishBookingConfirmed(ctx, event); err != nil {
		logger.Error("failed to publish booking confirmed event",
			"booking_id", bookingID, "error", err)
	}
}
