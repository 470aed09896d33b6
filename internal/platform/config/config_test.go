package config_test

import (
	"testing"

	"github.com/SscSPs/trade_ledger/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PGSQL_URL", "PORT", "EVENT_STORE", "DEFAULT_TAX_RATE", "PAID_TOLERANCE", "DRAFT_REFERENCE", "CURRENCY", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.EventStoreMemory, cfg.EventStore)
	assert.True(t, cfg.DefaultTaxRate.Equal(decimal.NewFromInt(20)))
	assert.True(t, cfg.PaidTolerance.Equal(decimal.RequireFromString("0.01")))
	assert.Equal(t, "BROUILLON", cfg.DraftReference)
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://ledger@localhost/ledger")
	t.Setenv("EVENT_STORE", "Postgres")
	t.Setenv("PAID_TOLERANCE", "0.05")
	t.Setenv("DEFAULT_TAX_RATE", "not-a-number")
	t.Setenv("CURRENCY", "usd")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.EventStorePostgres, cfg.EventStore)
	assert.True(t, cfg.PaidTolerance.Equal(decimal.RequireFromString("0.05")))
	assert.True(t, cfg.DefaultTaxRate.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_PostgresWithoutURLFallsBackToMemory(t *testing.T) {
	t.Setenv("PGSQL_URL", "")
	t.Setenv("EVENT_STORE", "postgres")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.EventStoreMemory, cfg.EventStore)
}
