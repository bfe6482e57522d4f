package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
)

// localeHandler answers visitor currency detection requests.
type localeHandler struct {
	localeService portssvc.LocaleSvcFacade
}

func newLocaleHandler(ls portssvc.LocaleSvcFacade) *localeHandler {
	return &localeHandler{localeService: ls}
}

func registerLocaleRoutes(public *gin.RouterGroup, ls portssvc.LocaleSvcFacade) {
	h := newLocaleHandler(ls)
	public.GET("/locale", h.getLocale)
}

// getLocale godoc
// @Summary Detect the visitor's currency
// @Description Resolves the visitor's country and display currency from their IP; falls back to the store default when detection fails
// @Tags locale
// @Produce  json
// @Success 200 {object} domain.VisitorLocale
// @Router /locale [get]
func (h *localeHandler) getLocale(c *gin.Context) {
	locale := h.localeService.DetectCurrency(c.Request.Context(), c.ClientIP())
	c.JSON(http.StatusOK, locale)
}
