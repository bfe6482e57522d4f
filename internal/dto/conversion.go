package dto

import (
	"github.com/shopspring/decimal"

	"github.com/safarnama/travel_booking_app/internal/core/domain"
)

// ConvertPriceRequest binds the query parameters of the public quote endpoint.
// From defaults to the store's base currency and To to the visitor's detected
// currency when omitted.
type ConvertPriceRequest struct {
	Amount decimal.Decimal `form:"amount" binding:"required"`
	From   string          `form:"from" binding:"omitempty,len=3"`
	To     string          `form:"to" binding:"omitempty,len=3"`
}

// ConversionResponse echoes the original amount next to the converted one so
// clients can always render something, and flags the no-rate degradation
// explicitly instead of leaving callers to compare amounts.
type ConversionResponse struct {
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	RateUnavailable  bool            `json:"rateUnavailable"`
	Display          string          `json:"display"` // formatted converted amount, e.g. "₹1,234.50"
}

// ToConversionResponse converts a domain.Conversion plus its display string.
func ToConversionResponse(conv domain.Conversion, display string) ConversionResponse {
	return ConversionResponse{
		OriginalAmount:   conv.OriginalAmount,
		ConvertedAmount:  conv.Amount,
		FromCurrencyCode: conv.FromCurrencyCode,
		ToCurrencyCode:   conv.ToCurrencyCode,
		Rate:             conv.Rate,
		RateUnavailable:  conv.NoRateAvailable,
		Display:          display,
	}
}
