package config_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonaiky/ResidentManagement-sub000/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(700).Equal(cfg.Billing.MonthlyFee))
	assert.True(t, decimal.NewFromInt(18).Equal(cfg.Billing.TaxRate))
	assert.Equal(t, "B01", cfg.Billing.NCFSeries)
	assert.Equal(t, "pesos dominicanos", cfg.Billing.CurrencyName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("BILLING_MONTHLY_FEE", "850.50")
	t.Setenv("BILLING_NCF_SERIES", "B02")
	t.Setenv("BILLING_DEFAULT_RESOLUTION_DATE", "2026-12-31")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("850.50").Equal(cfg.Billing.MonthlyFee))
	assert.Equal(t, "B02", cfg.Billing.NCFSeries)
	assert.Equal(t, 9090, cfg.HTTP.Port)

	until := cfg.Billing.DefaultResolutionValidUntil()
	assert.Equal(t, 2026, until.Year())
	assert.Equal(t, time.December, until.Month())
}

func TestLoad_CuotaInvalida(t *testing.T) {
	t.Setenv("BILLING_MONTHLY_FEE", "setecientos")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestBillingConfig_LocationInvalidaUsaUTC(t *testing.T) {
	c := config.BillingConfig{Timezone: "Marte/Olympus"}
	assert.Equal(t, time.UTC, c.Location())
}
