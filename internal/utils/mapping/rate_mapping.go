package mapping

import (
	"github.com/safarnama/travel_booking_app/internal/core/domain"
	"github.com/safarnama/travel_booking_app/internal/models"
)

// ToModelCurrencyRate converts a domain CurrencyRate to a model CurrencyRate
func ToModelCurrencyRate(d domain.CurrencyRate) models.CurrencyRate {
	return models.CurrencyRate{
		RateID:           d.RateID,
		FromCurrencyCode: d.FromCurrencyCode,
		ToCurrencyCode:   d.ToCurrencyCode,
		Rate:             d.Rate,
		UpdatedAt:        d.UpdatedAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// ToDomainCurrencyRate converts a model CurrencyRate to a domain CurrencyRate
func ToDomainCurrencyRate(m models.CurrencyRate) domain.CurrencyRate {
	return domain.CurrencyRate{
		RateID:           m.RateID,
		FromCurrencyCode: m.FromCurrencyCode,
		ToCurrencyCode:   m.ToCurrencyCode,
		Rate:             m.Rate,
		UpdatedAt:        m.UpdatedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}
