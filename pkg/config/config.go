package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration. Everything the handlers and
// services need is enumerated here explicitly; there is no implicit global
// state for gateway secrets or currency defaults.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// Pricing
	BaseCurrency     string // currency prices are stored in
	FallbackCurrency string // used when locale detection fails or is pending

	// Payment gateways
	GatewayATrustedCaller bool // honour gateway-a trust-by-presence confirmations
	GatewayBSecretKey     string
	GatewayBBaseURL       string

	// External services
	GeoIPBaseURL     string
	RateFeedURL      string
	RateFeedInterval time.Duration
	KafkaBrokers     []string
	KafkaTopic       string

	// Back-office auth
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURL  string `mapstructure:"GOOGLE_REDIRECT_URL"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BASE_CURRENCY", "USD")
	viper.SetDefault("FALLBACK_CURRENCY", "USD")
	viper.SetDefault("GATEWAY_A_TRUSTED_CALLER", false)
	viper.SetDefault("GATEWAY_B_SECRET_KEY", "")
	viper.SetDefault("GATEWAY_B_BASE_URL", "https://api.gateway-b.example.com")
	viper.SetDefault("GEOIP_BASE_URL", "https://ipapi.co")
	viper.SetDefault("RATE_FEED_URL", "")
	viper.SetDefault("RATE_FEED_INTERVAL", "6h")
	viper.SetDefault("KAFKA_BROKERS", "")
	viper.SetDefault("KAFKA_TOPIC", "booking-events")
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "1h")
	viper.SetDefault("JWT_ISSUER", "travel-booking-backend")
	viper.SetDefault("GOOGLE_CLIENT_ID", "")
	viper.SetDefault("GOOGLE_CLIENT_SECRET", "")
	viper.SetDefault("GOOGLE_REDIRECT_URL", "")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.BaseCurrency = strings.ToUpper(viper.GetString("BASE_CURRENCY"))
	cfg.FallbackCurrency = strings.ToUpper(viper.GetString("FALLBACK_CURRENCY"))

	cfg.GatewayATrustedCaller = viper.GetBool("GATEWAY_A_TRUSTED_CALLER")
	cfg.GatewayBSecretKey = viper.GetString("GATEWAY_B_SECRET_KEY")
	cfg.GatewayBBaseURL = viper.GetString("GATEWAY_B_BASE_URL")
	if cfg.GatewayBSecretKey == "" {
		log.Println("Warning: GATEWAY_B_SECRET_KEY not set. Gateway-B payment verification will fail.")
	}

	cfg.GeoIPBaseURL = viper.GetString("GEOIP_BASE_URL")

	cfg.RateFeedURL = viper.GetString("RATE_FEED_URL")
	feedIntervalStr := viper.GetString("RATE_FEED_INTERVAL")
	feedInterval, err := time.ParseDuration(feedIntervalStr)
	if err != nil {
		feedInterval = 6 * time.Hour
		log.Printf("Warning: Invalid value for RATE_FEED_INTERVAL ('%s'). Defaulting to %s.\n", feedIntervalStr, feedInterval.String())
	}
	cfg.RateFeedInterval = feedInterval
	if cfg.RateFeedURL == "" {
		log.Println("Warning: RATE_FEED_URL not set. The rate-feed updater will not run.")
	}

	if brokers := viper.GetString("KAFKA_BROKERS"); brokers != "" {
		cfg.KafkaBrokers = strings.Split(brokers, ",")
	} else {
		log.Println("Warning: KAFKA_BROKERS not set. Booking events will not be published.")
	}
	cfg.KafkaTopic = viper.GetString("KAFKA_TOPIC")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.GoogleClientID = viper.GetString("GOOGLE_CLIENT_ID")
	cfg.GoogleClientSecret = viper.GetString("GOOGLE_CLIENT_SECRET")
	cfg.GoogleRedirectURL = viper.GetString("GOOGLE_REDIRECT_URL")
	if cfg.GoogleClientID == "" {
		log.Println("Warning: GOOGLE_CLIENT_ID not set. Google sign-in will not function.")
	}

	return cfg, nil
}
