package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"posfit/internal/adapter/render"
)

func newFeaturesCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "features",
		Short: "List the feature catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			features := a.catalog.Features()
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, features)
			}
			for _, f := range features {
				fmt.Fprintf(out, "%-10s %s\n", f.Key, f.Name)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func newSystemsCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		matrix bool
	)

	cmd := &cobra.Command{
		Use:   "systems",
		Short: "List the POS systems and the features they support",
		Long: `List the POS systems in the catalog.

Examples:
  posfit systems
  posfit systems --matrix`,
		RunE: func(cmd *cobra.Command, args []string) error {
			features := a.catalog.Features()
			systems := a.catalog.Systems()
			out := cmd.OutOrStdout()

			if asJSON {
				return writeJSON(out, systems)
			}
			if matrix {
				render.NewRenderer(out, a.chartWidth(out)).Heatmap(features, systems)
				return nil
			}

			for _, s := range systems {
				var keys []string
				for i, f := range features {
					if s.Supports(i) {
						keys = append(keys, f.Key)
					}
				}
				fmt.Fprintf(out, "%s\n    %s\n    features: %s\n\n", s.Name, s.Description, strings.Join(keys, ", "))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&matrix, "matrix", false, "show the support matrix")
	return cmd
}

func newScenariosCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the weighting scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := a.catalog.Scenarios()
			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, scenarios)
			}

			features := a.catalog.Features()
			for _, w := range scenarios {
				fmt.Fprintf(out, "Scenario %d: %s (total %d)\n", w.ID, w.Name, w.Total())
				for _, f := range features {
					fmt.Fprintf(out, "    %-10s %3d\n", f.Key, w.Weights[f.Key])
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}

func newVenuesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "venues",
		Short: "List the venue types accepted by match --venue",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, v := range a.catalog.Venues() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d  %s\n", v.ID, v.Name)
			}
			return nil
		},
	}
}
