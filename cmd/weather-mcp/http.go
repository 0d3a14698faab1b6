package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpapi "github.com/i474232898/weather-mcp/internal/api/http"
)

func newHTTPCmd(d *deps) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "http",
		Short: "Serve the weather lookups as an HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = d.cfg.Port
			}

			app := httpapi.NewApp(d.service, d.logger)

			// Stop on SIGINT/SIGTERM.
			ctx, stop := signal.NotifyContext(commandContext(cmd), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			listenErr := make(chan error, 1)
			go func() {
				d.logger.WithField("port", port).Info("http server listening")
				listenErr <- app.Listen(":" + port)
			}()

			select {
			case err := <-listenErr:
				d.logger.WithError(err).Error("fiber server stopped")
				return err
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := app.ShutdownWithContext(shutdownCtx); err != nil {
				d.logger.WithError(err).Error("error during shutdown")
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (defaults to PORT).")
	return cmd
}
