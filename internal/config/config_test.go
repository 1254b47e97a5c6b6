package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets an environment variable for the duration of a test.
func clearEnv(t *testing.T, key string) {
	t.Helper()
	// Setenv registers the restore; the value is then removed.
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestLoad_Defaults(t *testing.T) {
	for _, v := range []string{"APP_ENV", "LOG_LEVEL", "PAYMENT_OFFSET_DAYS", "PAYMENT_LOCATION"} {
		clearEnv(t, v)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 30, cfg.Payment.OffsetDays)
	assert.Equal(t, time.UTC, cfg.Payment.Location)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_AppConfig(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "error", cfg.App.LogLevel)
}

func TestLoad_PaymentConfig(t *testing.T) {
	t.Setenv("PAYMENT_OFFSET_DAYS", "45")
	t.Setenv("PAYMENT_LOCATION", "America/New_York")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 45, cfg.Payment.OffsetDays)
	assert.Equal(t, "America/New_York", cfg.Payment.Location.String())
}

func TestLoad_InvalidOffset(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"not a number", "thirty"},
		{"zero", "0"},
		{"negative", "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PAYMENT_OFFSET_DAYS", tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "PAYMENT_OFFSET_DAYS")
		})
	}
}

func TestLoad_NonPositiveOffsetIsSentinel(t *testing.T) {
	t.Setenv("PAYMENT_OFFSET_DAYS", "0")

	_, err := Load()
	assert.ErrorIs(t, err, ErrNonPositiveOffset)
}

func TestLoad_InvalidLocation(t *testing.T) {
	t.Setenv("PAYMENT_LOCATION", "Nowhere/Atlantis")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PAYMENT_LOCATION")
}
