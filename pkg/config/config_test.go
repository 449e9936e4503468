package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/puntoventa/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.True(t, cfg.App.SeedDemo)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTP.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "Cajero principal", cfg.POS.Cashier)
	assert.Equal(t, "#6B7280", cfg.POS.DefaultCategoryColor)

	loc, err := cfg.POS.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_SEED_DEMO", "false")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("POS_CASHIER", "Caja 2")
	t.Setenv("POS_TIMEZONE", "UTC")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.App.Env)
	assert.False(t, cfg.App.SeedDemo)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Caja 2", cfg.POS.Cashier)

	loc, err := cfg.POS.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())
}

func TestLoad_Invalidos(t *testing.T) {
	t.Run("zona horaria", func(t *testing.T) {
		t.Setenv("POS_TIMEZONE", "Marte/Olympus")
		_, err := config.Load()
		assert.Error(t, err)
	})
	t.Run("puerto", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "abc")
		_, err := config.Load()
		assert.Error(t, err)
	})
}
