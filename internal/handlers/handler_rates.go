package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safarnama/travel_booking_app/internal/apperrors"
	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
	"github.com/safarnama/travel_booking_app/internal/dto"
	"github.com/safarnama/travel_booking_app/internal/middleware"
	"github.com/safarnama/travel_booking_app/internal/utils/moneyfmt"
)

// rateHandler handles conversion rate and price quote requests.
type rateHandler struct {
	rateService     portssvc.RateSvcFacade
	converter       portssvc.ConverterSvc
	currencyService portssvc.CurrencySvcFacade
	localeService   portssvc.LocaleSvcFacade
	baseCurrency    string
}

// newRateHandler creates a new rateHandler.
func newRateHandler(rs portssvc.RateSvcFacade, conv portssvc.ConverterSvc, cs portssvc.CurrencySvcFacade, ls portssvc.LocaleSvcFacade, baseCurrency string) *rateHandler {
	return &rateHandler{
		rateService:     rs,
		converter:       conv,
		currencyService: cs,
		localeService:   ls,
		baseCurrency:    baseCurrency,
	}
}

// registerRateRoutes registers rate and price quote routes. Reads and quotes
// are public, rate creation is admin-only.
func registerRateRoutes(public *gin.RouterGroup, admin *gin.RouterGroup, rs portssvc.RateSvcFacade, conv portssvc.ConverterSvc, cs portssvc.CurrencySvcFacade, ls portssvc.LocaleSvcFacade, baseCurrency string) {
	h := newRateHandler(rs, conv, cs, ls, baseCurrency)

	public.GET("/rates", h.listRates)
	public.GET("/rates/:from/:to", h.getRate)
	public.GET("/prices/convert", h.convertPrice)
	admin.POST("/rates", h.createRate)
}

// createRate godoc
// @Summary Create or refresh a conversion rate
// @Description Stores a directed conversion rate (admin operation)
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateCurrencyRateRequest true "Rate details"
// @Success 201 {object} dto.CurrencyRateResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create rate"
// @Security BearerAuth
// @Router /rates [post]
func (h *rateHandler) createRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCurrencyRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateCurrencyRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.CreateCurrencyRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating rate", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create rate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rate"})
		}
		return
	}

	// Fresh rates should be answerable immediately, not on the next feed cycle.
	if err := h.converter.Reload(c.Request.Context()); err != nil {
		logger.Error("Failed to reload converter after rate creation", slog.String("error", err.Error()))
	}

	c.JSON(http.StatusCreated, dto.ToCurrencyRateResponse(rate))
}

// listRates godoc
// @Summary List all stored conversion rates
// @Tags rates
// @Produce  json
// @Success 200 {array} dto.CurrencyRateResponse
// @Failure 500 {object} map[string]string "Failed to list rates"
// @Router /rates [get]
func (h *rateHandler) listRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list rates"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCurrencyRateResponse(rates))
}

// getRate godoc
// @Summary Get the conversion rate for a currency pair
// @Description Resolves the rate: a directly stored row wins, otherwise the reciprocal of the reverse row
// @Tags rates
// @Produce  json
// @Param   from path string true "Source currency code"
// @Param   to path string true "Target currency code"
// @Success 200 {object} dto.CurrencyRateResponse
// @Failure 400 {object} map[string]string "Invalid pair"
// @Failure 404 {object} map[string]string "No rate available"
// @Failure 500 {object} map[string]string "Failed to get rate"
// @Router /rates/{from}/{to} [get]
func (h *rateHandler) getRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	from := c.Param("from")
	to := c.Param("to")

	rate, err := h.rateService.GetRate(c.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("No rate available for %s to %s", from, to)})
			return
		}
		logger.Error("Failed to get rate", slog.String("from", from), slog.String("to", to), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get rate"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCurrencyRateResponse(rate))
}

// convertPrice godoc
// @Summary Convert a price between currencies
// @Description Converts an amount; from defaults to the store base currency, to defaults to the visitor's detected currency. Unresolvable pairs return the original amount with rateUnavailable set.
// @Tags prices
// @Produce  json
// @Param   amount query number true "Amount to convert"
// @Param   from query string false "Source currency code (default: base currency)"
// @Param   to query string false "Target currency code (default: detected)"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /prices/convert [get]
func (h *rateHandler) convertPrice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConvertPriceRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		logger.Warn("Failed to bind query for ConvertPrice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	from := req.From
	if from == "" {
		from = h.baseCurrency
	}
	to := req.To
	if to == "" {
		to = h.localeService.DetectCurrency(c.Request.Context(), c.ClientIP()).CurrencyCode
	}

	conv := h.converter.Convert(req.Amount, from, to)

	// Format against the catalogue entry for the target currency; fall back
	// to code-prefixed formatting when the currency is not catalogued.
	display := moneyfmt.FormatCode(conv.Amount, conv.ToCurrencyCode)
	if currency, err := h.currencyService.GetCurrencyByCode(c.Request.Context(), conv.ToCurrencyCode); err == nil {
		display = moneyfmt.Format(conv.Amount, *currency)
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(conv, display))
}
