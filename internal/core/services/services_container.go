package services

import (
	portsrepo "github.com/safarnama/travel_booking_app/internal/core/ports/repositories"
	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
	"github.com/safarnama/travel_booking_app/internal/platform/events"
	"github.com/safarnama/travel_booking_app/internal/platform/geoip"
	"github.com/safarnama/travel_booking_app/internal/platform/metrics"
	"github.com/safarnama/travel_booking_app/pkg/config"
)

// NewServiceContainer wires all application services with their
// dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, gatewayB CheckoutSessionVerifier, publisher events.Publisher, m *metrics.BookingMetrics, geoClient *geoip.Client) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:    NewCurrencyService(repos.CurrencyRepo),
		Rate:        NewRateService(repos.RateRepo, repos.CurrencyRepo),
		Converter:   NewConverterService(repos.RateRepo, m),
		Locale:      NewLocaleService(geoClient, cfg.FallbackCurrency),
		Booking:     NewBookingService(repos.BookingRepo, gatewayB, publisher, m, cfg.GatewayATrustedCaller),
		AdminUser:   NewAdminUserService(repos.AdminUserRepo),
		Token:       NewTokenService(cfg),
		GoogleOAuth: NewGoogleOAuthService(cfg),
	}
}
