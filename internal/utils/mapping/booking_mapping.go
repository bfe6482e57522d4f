package mapping

import (
	"github.com/safarnama/travel_booking_app/internal/core/domain"
	"github.com/safarnama/travel_booking_app/internal/models"
)

// ToDomainBooking converts a model Booking to a domain Booking
func ToDomainBooking(m models.Booking) domain.Booking {
	b := domain.Booking{
		BookingID:     m.BookingID,
		TourRef:       m.TourRef,
		CustomerName:  m.CustomerName,
		CustomerEmail: m.CustomerEmail,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
		BookingStatus: domain.BookingStatus(m.BookingStatus),
		ConfirmedAt:   m.ConfirmedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.PaymentMethod != nil {
		b.PaymentMethod = domain.PaymentMethod(*m.PaymentMethod)
	}
	if m.PaymentReference != nil {
		b.PaymentReference = *m.PaymentReference
	}
	return b
}

// ToDomainAdminUser converts a model AdminUser to a domain AdminUser
func ToDomainAdminUser(m models.AdminUser) domain.AdminUser {
	u := domain.AdminUser{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		AuthProvider: domain.AuthProvider(m.AuthProvider),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
	if m.PasswordHash != nil {
		u.PasswordHash = *m.PasswordHash
	}
	if m.ProviderUserID != nil {
		u.ProviderUserID = *m.ProviderUserID
	}
	return u
}
