package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus tracks whether a booking has been paid for.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// BookingStatus tracks the lifecycle of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// PaymentMethod identifies the gateway a payment was made through.
type PaymentMethod string

const (
	// PaymentMethodGatewayA is the redirect-style gateway whose callbacks carry
	// only a payment id. Verification trusts the caller and is therefore only
	// honoured when the trusted-caller capability is enabled in config.
	PaymentMethodGatewayA PaymentMethod = "gateway-a"
	// PaymentMethodGatewayB is the checkout-session gateway; payments are
	// verified against the gateway's session API.
	PaymentMethodGatewayB PaymentMethod = "gateway-b"
)

// Booking is the persisted record of a customer's reservation and its
// payment/confirmation state. Payment fields are mutated at most once, by a
// successful confirmation; no transition back to unpaid exists.
type Booking struct {
	BookingID        string          `json:"bookingID"`
	TourRef          string          `json:"tourRef"`
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	PaymentStatus    PaymentStatus   `json:"paymentStatus"`
	BookingStatus    BookingStatus   `json:"bookingStatus"`
	PaymentMethod    PaymentMethod   `json:"paymentMethod,omitempty"`
	PaymentReference string          `json:"paymentReference,omitempty"`
	ConfirmedAt      *time.Time      `json:"confirmedAt,omitempty"`
	AuditFields
}
