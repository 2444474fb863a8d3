package main

import (
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/mediaspa/ranger"
)

func newServeCommand(routesFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the client, its route endpoints and the development proxy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []ranger.RangerOption{ranger.WithContext(cmd.Context())}
			if *routesFlag != "" {
				opts = append(opts, ranger.WithRoutes(ranger.RoutesSource(*routesFlag)))
			}

			rng, err := ranger.New(opts...)
			if err != nil {
				return err
			}

			return rng.Guide()
		},
	}
}
