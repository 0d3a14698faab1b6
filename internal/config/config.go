package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/i474232898/weather-mcp/internal/weather/providers"
)

var validate = validator.New()

type AppConfig struct {
	// ForecastURL is the Open-Meteo forecast endpoint.
	ForecastURL string `validate:"required,url"`

	// HTTPTimeout bounds each outbound call (0 = no client timeout).
	HTTPTimeout time.Duration `validate:"gte=0"`

	// BreakerEnabled wraps provider calls in a circuit breaker.
	BreakerEnabled bool

	Port     string `validate:"required,numeric"`
	LogLevel string `validate:"oneof=trace debug info warn error"`
}

// Load reads configuration from environment with sensible defaults.
// A .env file in the working directory is loaded first when present.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}
	cfg := &AppConfig{}

	cfg.ForecastURL = getenvDefault("WEATHER_FORECAST_URL", providers.DefaultOpenMeteoURL)

	timeout, err := time.ParseDuration(getenvDefault("HTTP_TIMEOUT", "5s"))
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.BreakerEnabled, err = getenvBool("WEATHER_BREAKER_ENABLED", false)
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_BREAKER_ENABLED: %w", err)
	}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	return strconv.ParseBool(v)
}
