package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Event store backends.
const (
	EventStoreMemory   = "memory"
	EventStorePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	EventStore   string
	LogLevel     string

	// Ledger rules
	DefaultTaxRate decimal.Decimal
	PaidTolerance  decimal.Decimal
	DraftReference string
	Currency       string

	// HTTP surface
	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("EVENT_STORE", EventStoreMemory)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DEFAULT_TAX_RATE", "20")
	viper.SetDefault("PAID_TOLERANCE", "0.01")
	viper.SetDefault("DRAFT_REFERENCE", "BROUILLON")
	viper.SetDefault("CURRENCY", "EUR")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.EventStore = strings.ToLower(viper.GetString("EVENT_STORE"))
	switch cfg.EventStore {
	case EventStoreMemory:
	case EventStorePostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: EVENT_STORE=postgres but PGSQL_URL is not set. Falling back to memory.")
			cfg.EventStore = EventStoreMemory
		}
	default:
		log.Printf("Warning: Invalid value for EVENT_STORE ('%s'). Defaulting to %s.\n", cfg.EventStore, EventStoreMemory)
		cfg.EventStore = EventStoreMemory
	}

	cfg.LogLevel = viper.GetString("LOG_LEVEL")
	cfg.DefaultTaxRate = decimalSetting("DEFAULT_TAX_RATE", decimal.NewFromInt(20))
	cfg.PaidTolerance = decimalSetting("PAID_TOLERANCE", decimal.RequireFromString("0.01"))

	cfg.DraftReference = viper.GetString("DRAFT_REFERENCE")
	if cfg.DraftReference == "" {
		cfg.DraftReference = "BROUILLON"
	}
	cfg.Currency = strings.ToUpper(viper.GetString("CURRENCY"))
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

func decimalSetting(key string, fallback decimal.Decimal) decimal.Decimal {
	raw := viper.GetString(key)
	value, err := decimal.NewFromString(raw)
	if err != nil {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback.String())
		return fallback
	}
	return value
}
