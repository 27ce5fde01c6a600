package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "navctl",
	Short:         "Operational tools for the navigation microservice",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newPolylineCmd())
	rootCmd.AddCommand(newFormatCmd())
	rootCmd.AddCommand(newTransitsCmd())
}
