package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/xy-planning-network/mediaspa/route"
)

func newRoutesCommand(routesFlag *string) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List every path of the route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, t, err := loadTable(*routesFlag)
			if err != nil {
				return err
			}

			paths := t.Paths()
			resolved := make([]route.Resolution, 0, len(paths))
			for _, p := range paths {
				resolved = append(resolved, t.Resolve(p))
			}

			if asJSON {
				return writeJSON(cmd, resolved)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "history: %s, strict: %t\n", cfg.History, t.Strict())
			fmt.Fprintln(cmd.OutOrStdout(), renderResolutions(resolved))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Write the resolutions as JSON")

	return cmd
}

var resolutionHeaders = []string{"Path", "Kind", "Target", "Name", "View", "Title", "Layouts"}

func resolutionRow(res route.Resolution) []string {
	layouts := make([]string, 0, len(res.Match.Layouts))
	for _, l := range res.Match.Layouts {
		layouts = append(layouts, l.String())
	}

	return []string{
		res.Path,
		res.Kind.String(),
		res.Target,
		res.Match.Name,
		res.Match.View.String(),
		res.Title(),
		strings.Join(layouts, " > "),
	}
}

func renderResolutions(resolved []route.Resolution) string {
	rows := make([][]string, 0, len(resolved))
	for _, res := range resolved {
		rows = append(rows, resolutionRow(res))
	}

	return renderTable(resolutionHeaders, rows)
}
