package dto

import (
	"github.com/safarnama/travel_booking_app/internal/core/domain"
)

// CreateCurrencyRequest defines the structure for creating a new currency.
type CreateCurrencyRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"required,len=3,uppercase"`
	Symbol       string `json:"symbol" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Precision    int    `json:"precision" binding:"gte=0,lte=8"`
}

// CurrencyResponse defines the structure for API responses containing currency details.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(currency *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: currency.CurrencyCode,
		Symbol:       currency.Symbol,
		Name:         currency.Name,
		Precision:    currency.Precision,
	}
}

// ToListCurrencyResponse converts a slice of domain currencies to response DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	responses := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		responses[i] = ToCurrencyResponse(&currencies[i])
	}
	return responses
}
