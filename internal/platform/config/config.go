package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	RedisURL     string
	Port         string
	IsProduction bool

	// AuthPasswordHash is the PBKDF2-SHA512 hash every request's basic-auth
	// password is checked against. The username is ignored.
	AuthPasswordHash string

	// Price feed endpoints and cache TTL.
	NAVFeedURL      string
	QuoteAPIBaseURL string
	PriceCacheTTL   time.Duration

	// Reporting knobs for the expendable money figure.
	EmergencyBucketName string
	ReserveAmount       decimal.Decimal

	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("AUTH_PASSWORD_HASH", "")
	viper.SetDefault("NAV_FEED_URL", "https://www.amfiindia.com/spages/NAVAll.txt")
	viper.SetDefault("QUOTE_API_BASE_URL", "https://query1.finance.yahoo.com")
	viper.SetDefault("PRICE_CACHE_TTL", "1h")
	viper.SetDefault("EMERGENCY_BUCKET_NAME", "Emergency Fund")
	viper.SetDefault("RESERVE_AMOUNT", "50000")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.RedisURL = viper.GetString("REDIS_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.AuthPasswordHash = viper.GetString("AUTH_PASSWORD_HASH")
	if cfg.AuthPasswordHash == "" {
		log.Println("Warning: AUTH_PASSWORD_HASH not set. All requests will be rejected.")
	}

	cfg.NAVFeedURL = viper.GetString("NAV_FEED_URL")
	cfg.QuoteAPIBaseURL = viper.GetString("QUOTE_API_BASE_URL")

	ttlStr := viper.GetString("PRICE_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = time.Hour
		log.Printf("Warning: Invalid value for PRICE_CACHE_TTL (%q). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.PriceCacheTTL = ttl

	cfg.EmergencyBucketName = viper.GetString("EMERGENCY_BUCKET_NAME")

	reserveStr := viper.GetString("RESERVE_AMOUNT")
	reserve, err := decimal.NewFromString(reserveStr)
	if err != nil {
		reserve = decimal.Zero
		log.Printf("Warning: Invalid value for RESERVE_AMOUNT (%q). Defaulting to 0.\n", reserveStr)
	}
	cfg.ReserveAmount = reserve

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
