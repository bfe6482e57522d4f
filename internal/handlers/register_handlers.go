package handlers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/safarnama/travel_booking_app/cmd/docs"
	portssvc "github.com/safarnama/travel_booking_app/internal/core/ports/services"
	"github.com/safarnama/travel_booking_app/internal/middleware"
	"github.com/safarnama/travel_booking_app/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/", getHome)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerAuthRoutes(r, services)
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 groups. The public group serves the
// storefront unauthenticated; the confirmation group additionally carries
// permissive CORS (the payment gateways redirect browsers cross-origin) and
// rate limiting; the admin group is JWT-protected.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	public := r.Group("/api/v1")

	confirmRate, _ := limiter.NewRateFromFormatted("30-M")
	confirmLimiter := limiter.New(memory.NewStore(), confirmRate)
	confirm := r.Group("/api/v1",
		cors.New(cors.Config{
			AllowAllOrigins: true,
			AllowMethods:    []string{http.MethodPost, http.MethodOptions},
			AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
			MaxAge:          12 * time.Hour,
		}),
		middleware.RateLimit(confirmLimiter),
	)

	admin := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerCurrencyRoutes(public, admin, services.Currency)
	registerRateRoutes(public, admin, services.Rate, services.Converter, services.Currency, services.Locale, cfg.BaseCurrency)
	registerLocaleRoutes(public, services.Locale)
	registerBookingRoutes(confirm, admin, services.Booking)
}

// registerAuthRoutes sets up the back-office login routes.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	authHandler := NewAuthHandler(services.AdminUser, services.Token)
	oauthHandler := NewGoogleOAuthHandler(services.GoogleOAuth, services.AdminUser, services.Token)

	// 5 attempts per minute per IP on credential endpoints
	rate, _ := limiter.NewRateFromFormatted("5-M")
	loginLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), authHandler.Login)
		auth.POST("/google/exchange-code", middleware.RateLimit(loginLimiter), oauthHandler.ExchangeCodeGoogle)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
