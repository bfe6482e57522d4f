package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Booking mirrors the bookings table.
type Booking struct {
	BookingID        string          `json:"bookingID"` // Primary Key (UUID)
	TourRef          string          `json:"tourRef"`
	CustomerName     string          `json:"customerName"`
	CustomerEmail    string          `json:"customerEmail"`
	Amount           decimal.Decimal `json:"amount"`
	CurrencyCode     string          `json:"currencyCode"`
	PaymentStatus    string          `json:"paymentStatus"`
	BookingStatus    string          `json:"bookingStatus"`
	PaymentMethod    *string         `json:"paymentMethod"`
	PaymentReference *string         `json:"paymentReference"`
	ConfirmedAt      *time.Time      `json:"confirmedAt"`
	AuditFields
}
