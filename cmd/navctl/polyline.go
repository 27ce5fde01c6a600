package main

import (
	"fmt"

	"github.com/navigation-microservice/internal/pkg/polyline"
	"github.com/spf13/cobra"
)

func newPolylineCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "polyline",
		Short: "Encoded polyline helpers",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "decode <encoded>",
		Short: "Decode an encoded polyline into lat,lng lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := polyline.Decode(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range points {
				fmt.Fprintf(out, "%.5f,%.5f\n", p.Lat, p.Lng)
			}
			return nil
		},
	})

	return cmd
}
