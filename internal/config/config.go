// Package config handles library configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/brokeragelib/brokerage/internal/payment"
)

// ErrNonPositiveOffset is returned when the payment offset is zero or negative.
var ErrNonPositiveOffset = errors.New("payment offset must be positive")

// Config holds all configuration.
type Config struct {
	App     AppConfig
	Payment PaymentConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Env      string
	LogLevel string
}

// PaymentConfig holds payment date settings.
type PaymentConfig struct {
	OffsetDays int
	Location   *time.Location
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Env:      "development",
			LogLevel: "info",
		},
		Payment: PaymentConfig{
			OffsetDays: payment.DefaultOffsetDays,
			Location:   time.UTC,
		},
	}
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := Default()

	cfg.App.Env = getEnvOrDefault("APP_ENV", cfg.App.Env)
	cfg.App.LogLevel = getEnvOrDefault("LOG_LEVEL", cfg.App.LogLevel)

	offset, err := getEnvAsInt("PAYMENT_OFFSET_DAYS", cfg.Payment.OffsetDays)
	if err != nil {
		return nil, fmt.Errorf("invalid PAYMENT_OFFSET_DAYS: %w", err)
	}
	if offset < 1 {
		return nil, fmt.Errorf("invalid PAYMENT_OFFSET_DAYS: %w", ErrNonPositiveOffset)
	}
	cfg.Payment.OffsetDays = offset

	loc, err := time.LoadLocation(getEnvOrDefault("PAYMENT_LOCATION", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYMENT_LOCATION: %w", err)
	}
	cfg.Payment.Location = loc

	return cfg, nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns the environment variable as an integer.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	return strconv.Atoi(valueStr)
}
