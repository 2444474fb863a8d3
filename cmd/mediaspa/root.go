package main

import (
	"github.com/spf13/cobra"
	"github.com/xy-planning-network/mediaspa/ranger"
	"github.com/xy-planning-network/mediaspa/route"
)

func newRootCommand() *cobra.Command {
	var routesFlag string

	rootCmd := &cobra.Command{
		Use:           "mediaspa",
		Short:         "Serve the media client and inspect its routes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&routesFlag, "routes", "r", "", "Route table TOML file")

	rootCmd.AddCommand(newServeCommand(&routesFlag))
	rootCmd.AddCommand(newRoutesCommand(&routesFlag))
	rootCmd.AddCommand(newResolveCommand(&routesFlag))

	return rootCmd
}

// loadTable reads and builds the route table named by the --routes flag.
func loadTable(fp string) (route.Config, *route.Table, error) {
	fsys, name := ranger.RoutesSource(fp)
	cfg, err := route.Load(fsys, name)
	if err != nil {
		return route.Config{}, nil, err
	}

	t, err := cfg.Table()
	if err != nil {
		return route.Config{}, nil, err
	}

	return cfg, t, nil
}
