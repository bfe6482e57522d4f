package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/safarnama/travel_booking_app/internal/apperrors"
	"github.com/safarnama/travel_booking_app/internal/core/domain"
	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
	"github.com/safarnama/travel_booking_app/internal/dto"
	"github.com/safarnama/travel_booking_app/internal/middleware"
)

// internalErrorMessage is the only text a confirmation caller sees on an
// unexpected failure; the real error goes to the log.
const internalErrorMessage = "confirmation failed, please contact support"

// bookingHandler handles booking lookups and the public payment-confirmation
// endpoint.
type bookingHandler struct {
	bookingService portssvc.BookingSvcFacade
}

func newBookingHandler(bs portssvc.BookingSvcFacade) *bookingHandler {
	return &bookingHandler{bookingService: bs}
}

// registerBookingRoutes registers the public confirmation endpoint and the
// admin booking reads. confirmGroup carries CORS and rate limiting.
func registerBookingRoutes(confirmGroup *gin.RouterGroup, admin *gin.RouterGroup, bs portssvc.BookingSvcFacade) {
	h := newBookingHandler(bs)

	confirmGroup.POST("/bookings/confirm-payment", h.confirmPayment)
	admin.GET("/bookings", h.listBookings)
	admin.GET("/bookings/:bookingID", h.getBookingByID)
}

// confirmPayment godoc
// @Summary Confirm a booking's payment
// @Description Verifies the payment with the named gateway and marks the booking paid+confirmed exactly once. Replays of an already-confirmed booking succeed with alreadyConfirmed set.
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   confirmation body dto.ConfirmPaymentRequest true "Payment confirmation details"
// @Success 200 {object} dto.ConfirmPaymentResponse
// @Failure 400 {object} dto.ConfirmPaymentResponse "Invalid input"
// @Failure 402 {object} dto.ConfirmPaymentResponse "Payment not verified"
// @Failure 404 {object} dto.ConfirmPaymentResponse "Booking not found"
// @Failure 502 {object} dto.ConfirmPaymentResponse "Gateway unreachable"
// @Router /bookings/confirm-payment [post]
func (h *bookingHandler) confirmPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConfirmPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ConfirmPaymentResponse{
			Success: false,
			Error:   "Invalid request format: " + err.Error(),
		})
		return
	}

	logger = logger.With(
		slog.String("booking_id", req.BookingID),
		slog.String("payment_method", req.PaymentMethod),
	)

	outcome, err := h.bookingService.ConfirmPayment(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrVerificationFailed):
			logger.Warn("Payment verification failed", slog.String("error", err.Error()))
			c.JSON(http.StatusPaymentRequired, dto.ConfirmPaymentResponse{
				Success: false,
				Error:   err.Error(),
			})
		case errors.Is(err, apperrors.ErrGatewayUnavailable):
			logger.Error("Payment gateway unreachable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, dto.ConfirmPaymentResponse{
				Success: false,
				Error:   "payment gateway unavailable, please retry",
			})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Booking not found for confirmation")
			c.JSON(http.StatusNotFound, dto.ConfirmPaymentResponse{
				Success: false,
				Error:   "booking not found",
			})
		default:
			logger.Error("Unexpected error confirming payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, dto.ConfirmPaymentResponse{
				Success: false,
				Error:   internalErrorMessage,
			})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmPaymentResponse{
		Success:          true,
		BookingID:        outcome.BookingID,
		AlreadyConfirmed: outcome.AlreadyConfirmed,
	})
}

// getBookingByID godoc
// @Summary Get a booking by ID
// @Tags bookings
// @Produce  json
// @Param   bookingID path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to get booking"
// @Security BearerAuth
// @Router /bookings/{bookingID} [get]
func (h *bookingHandler) getBookingByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	booking, err := h.bookingService.GetBookingByID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		logger.Error("Failed to get booking", slog.String("booking_id", bookingID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get booking"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// listBookings godoc
// @Summary List bookings
// @Description Lists bookings, optionally filtered by booking status
// @Tags bookings
// @Produce  json
// @Param   status query string false "Booking status filter (pending, confirmed, cancelled)"
// @Success 200 {array} dto.BookingResponse
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 500 {object} map[string]string "Failed to list bookings"
// @Security BearerAuth
// @Router /bookings [get]
func (h *bookingHandler) listBookings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var status *domain.BookingStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.BookingStatus(raw)
		switch s {
		case domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusCancelled:
			status = &s
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking status: " + raw})
			return
		}
	}

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), status)
	if err != nil {
		logger.Error("Failed to list bookings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bookings"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListBookingResponse(bookings))
}
