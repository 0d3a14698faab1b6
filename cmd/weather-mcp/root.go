package main

import (
	"context"
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/i474232898/weather-mcp/internal/config"
	"github.com/i474232898/weather-mcp/internal/logging"
	"github.com/i474232898/weather-mcp/internal/weather"
	"github.com/i474232898/weather-mcp/internal/weather/providers"
)

// deps holds what every subcommand needs once configuration is loaded.
type deps struct {
	cfg     *config.AppConfig
	logger  *logrus.Logger
	service *weather.Service
}

func newRootCmd() *cobra.Command {
	d := &deps{}

	root := &cobra.Command{
		Use:           "weather-mcp",
		Short:         "Current weather for major Korean cities",
		Long:          `Serves get_weather and list_cities tools over MCP stdio, an HTTP API, or one-shot CLI lookups backed by Open-Meteo.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return d.load()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(commandContext(cmd), d)
		},
	}

	root.AddCommand(
		newServeCmd(d),
		newHTTPCmd(d),
		newGetCmd(d),
		newCitiesCmd(d),
	)
	return root
}

func (d *deps) load() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return err
	}

	// Shared HTTP client for outbound provider calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	opts := []providers.OpenMeteoOption{providers.WithBaseURL(cfg.ForecastURL)}
	if cfg.BreakerEnabled {
		opts = append(opts, providers.WithCircuitBreaker(providers.NewCircuitBreaker("openmeteo")))
	}
	provider := providers.NewOpenMeteoProvider(httpClient, opts...)

	d.cfg = cfg
	d.logger = logger
	d.service = weather.NewService(weather.DefaultRegistry(), provider, weather.WithLogger(logger))
	return nil
}

// commandContext returns the command's context, falling back to Background
// when the command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
