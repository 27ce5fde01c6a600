package main

import (
	"fmt"
	"strconv"

	"github.com/navigation-microservice/internal/pkg/units"
	"github.com/spf13/cobra"
)

func newFormatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Render distances and durations the way route responses do",
	}

	cmd.AddCommand(
		formatSubcommand("distance <meters>", "Format a distance in meters", units.FormatDistance),
		formatSubcommand("duration <seconds>", "Format a duration in seconds", units.FormatDuration),
	)

	return cmd
}

func formatSubcommand(use, short string, format func(float64) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid number %q: %w", args[0], err)
			}
			if value < 0 {
				return fmt.Errorf("value must be non-negative, got %v", value)
			}
			fmt.Fprintln(cmd.OutOrStdout(), format(value))
			return nil
		},
	}
}
