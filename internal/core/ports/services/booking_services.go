package services

import (
	"context"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
	"github.com/safarnama/travel_booking_app/internal/dto"
)

// BookingReaderSvc defines read operations for bookings
type BookingReaderSvc interface {
	// GetBookingByID retrieves a booking by its ID.
	GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// ListBookings retrieves bookings, optionally filtered by status.
	ListBookings(ctx context.Context, status *domain.BookingStatus) ([]domain.Booking, error)
}

// BookingConfirmerSvc verifies a payment with the appropriate gateway and
// transitions the booking to paid+confirmed exactly once.
type BookingConfirmerSvc interface {
	ConfirmPayment(ctx context.Context, req dto.ConfirmPaymentRequest) (*dto.ConfirmPaymentOutcome, error)
}

// BookingSvcFacade combines all booking-related service interfaces
type BookingSvcFacade interface {
	BookingReaderSvc
	BookingConfirmerSvc
}
