package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
)

// ConfirmPaymentRequest is the body of the public payment-confirmation call.
// SessionID is required for the checkout-session gateway only.
type ConfirmPaymentRequest struct {
	PaymentID     string `json:"paymentId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=gateway-a gateway-b"`
	BookingID     string `json:"bookingId" binding:"required"`
	SessionID     string `json:"sessionId"`
}

// ConfirmPaymentOutcome is the service-level result of a confirmation.
// AlreadyConfirmed marks an idempotent replay: the booking was confirmed by
// an earlier call and this one changed nothing.
type ConfirmPaymentOutcome struct {
	BookingID        string
	PaymentReference string
	AlreadyConfirmed bool
}

// ConfirmPaymentResponse is the wire response of the confirmation endpoint.
type ConfirmPaymentResponse struct {
	Success          bool   `json:"success"`
	BookingID        string `json:"bookingId,omitempty"`
	AlreadyConfirmed bool   `json:"alreadyConfirmed,omitempty"`
	Error            string `json:"error,omitempty"`
}

// BookingResponse defines the structure for API responses containing booking details.
type BookingResponse struct {
	BookingID        string          `json:"bookingID"`
	TourRef          string          `json:"tourRef"`
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	PaymentStatus    string          `json:"paymentStatus"`
	BookingStatus    string          `json:"bookingStatus"`
	PaymentMethod    string          `json:"paymentMethod,omitempty"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	ConfirmedAt      *time.Time      `json:"confirmedAt,omitempty"`
	CreatedAt        time.Time       `json:"createdAt"`
}

// ToBookingResponse converts a domain.Booking to BookingResponse DTO
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:        b.BookingID,
		TourRef:          b.TourRef,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		Amount:           b.Amount,
		CurrencyCode:     b.CurrencyCode,
		PaymentStatus:    string(b.PaymentStatus),
		BookingStatus:    string(b.BookingStatus),
		PaymentMethod:    string(b.PaymentMethod),
		PaymentReference: b.PaymentReference,
		ConfirmedAt:      b.ConfirmedAt,
		CreatedAt:        b.CreatedAt,
	}
}

// ToListBookingResponse converts a slice of domain bookings to response DTOs.
func ToListBookingResponse(bookings []domain.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = ToBookingResponse(&bookings[i])
	}
	return responses
}
