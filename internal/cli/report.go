package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"posfit/internal/adapter/render"
	"posfit/internal/usecase"
)

func newReportCmd(a *app) *cobra.Command {
	var (
		samples  int
		scenario int
		seed     uint64
		bins     int
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show every chart: scenario rankings, stress test and support matrix",
		Long: `Render the effectiveness ranking under each scenario, the stress test
histogram and the feature support matrix in one go.

Examples:
  posfit report
  posfit report --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.stressDefaults(cmd, &samples, &scenario, &seed, &bins)
			out := cmd.OutOrStdout()
			rd := render.NewRenderer(out, a.chartWidth(out))

			rankings, err := usecase.NewScoreUseCase(a.catalog, a.logger).RankAll()
			if err != nil {
				return err
			}
			for _, r := range rankings {
				rd.Ranking(r)
				fmt.Fprintln(out)
			}

			scores, err := a.sample(samples, scenario, seed, nil)
			if err != nil {
				return err
			}
			rd.Histogram(fmt.Sprintf("Stress test: effectiveness of %d random systems (scenario %d)", samples, scenario), scores, bins)
			fmt.Fprintln(out)

			rd.Heatmap(a.catalog.Features(), a.catalog.Systems())
			return nil
		},
	}
	cmd.Flags().IntVarP(&samples, "samples", "n", 0, "number of synthetic systems (default from config)")
	cmd.Flags().IntVarP(&scenario, "scenario", "s", 0, "stress test scenario id (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed, 0 for a random run (default from config)")
	cmd.Flags().IntVar(&bins, "bins", 0, "histogram bins (default from config)")
	return cmd
}
