package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
)

// CreateCurrencyRateRequest defines the structure for creating a conversion rate.
type CreateCurrencyRateRequest struct {
	FromCurrencyCode string          `json:"fromCurrencyCode" binding:"required,len=3,uppercase"`
	ToCurrencyCode   string          `json:"toCurrencyCode" binding:"required,len=3,uppercase"`
	Rate             decimal.Decimal `json:"rate" binding:"required"`
}

// CurrencyRateResponse defines the structure for API responses containing rate details.
type CurrencyRateResponse struct {
	RateID           string          `json:"rateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

// ToCurrencyRateResponse converts a domain.CurrencyRate to CurrencyRateResponse DTO
func ToCurrencyRateResponse(rate *domain.CurrencyRate) CurrencyRateResponse {
	return CurrencyRateResponse{
		RateID:           rate.RateID,
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		UpdatedAt:        rate.UpdatedAt,
	}
}

// ToListCurrencyRateResponse converts a slice of domain rates to response DTOs.
func ToListCurrencyRateResponse(rates []domain.CurrencyRate) []CurrencyRateResponse {
	responses := make([]CurrencyRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToCurrencyRateResponse(&rates[i])
	}
	return responses
}
