package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-mcp/internal/tools"
)

func newServeCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the weather tools over MCP stdio (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(commandContext(cmd), d)
		},
	}
}

func runServe(parent context.Context, d *deps) error {
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	s := tools.NewServer(d.service, d.logger, version)
	return tools.ServeStdio(ctx, s, d.logger, os.Stdin, os.Stdout)
}
