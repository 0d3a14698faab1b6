package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/i474232898/weather-mcp/internal/weather"
)

func newGetCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "get [city]",
		Short: "Print the current weather for a city",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			city := weather.DefaultCity
			if len(args) == 1 {
				city = args[0]
			}
			fmt.Fprintln(cmd.OutOrStdout(), d.service.Lookup(commandContext(cmd), city))
		},
	}
}

func newCitiesCmd(d *deps) *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List supported cities",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), d.service.ListCities())
		},
	}
}
