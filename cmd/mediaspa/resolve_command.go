package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/mediaspa"
	"github.com/xy-planning-network/mediaspa/http/router"
	"github.com/xy-planning-network/mediaspa/ranger"
)

func newResolveCommand(routesFlag *string) *cobra.Command {
	var asJSON bool
	var base string

	cmd := &cobra.Command{
		Use:   "resolve <path or URL>",
		Short: "Resolve a path, or a URL of the client, against the route table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, t, err := loadTable(*routesFlag)
			if err != nil {
				return err
			}

			path := args[0]
			if u, err := url.Parse(path); err == nil && u.IsAbs() {
				var ok bool
				if path, ok = cfg.History.PathFromURL(router.NormalizeBase(base), u); !ok {
					return fmt.Errorf("%w: %s lies outside %s", mediaspa.ErrNotValid, args[0], base)
				}
			}

			res := t.Resolve(path)
			if asJSON {
				if err := writeJSON(cmd, res); err != nil {
					return err
				}
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(resolutionHeaders, [][]string{resolutionRow(res)}))
			}

			if !res.Found() {
				return fmt.Errorf("%w: %s", mediaspa.ErrNotExist, res.Path)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the resolution as JSON")
	cmd.Flags().StringVar(&base, "base", ranger.DefaultBasePath, "Path the client is served under, for resolving URLs")

	return cmd
}
