package repositories

import (
	"context"
	"time"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
)

// BookingReader defines read operations for booking data
type BookingReader interface {
	// FindBookingByID retrieves a booking by its ID.
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// ListBookings retrieves bookings, optionally filtered by booking status.
	ListBookings(ctx context.Context, status *domain.BookingStatus) ([]domain.Booking, error)
}

// BookingWriter defines write operations for booking data
type BookingWriter interface {
	// SaveBooking persists a new booking in pending/unpaid state.
	SaveBooking(ctx context.Context, booking domain.Booking) error

	// ConfirmBookingPayment transitions a booking to paid+confirmed in a
	// single conditional write guarded on payment_status = unpaid. Returns
	// apperrors.ErrAlreadyConfirmed when the guard matched no row but the
	// booking exists, and apperrors.ErrNotFound when it does not.
	ConfirmBookingPayment(ctx context.Context, bookingID string, method domain.PaymentMethod, paymentReference string, confirmedAt time.Time) error
}

// BookingRepositoryFacade combines all booking-related repository interfaces
type BookingRepositoryFacade interface {
	BookingReader
	BookingWriter
}
