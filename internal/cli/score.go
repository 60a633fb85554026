package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"posfit/internal/adapter/render"
	"posfit/internal/domain"
	"posfit/internal/usecase"
)

func newScoreCmd(a *app) *cobra.Command {
	var (
		scenario int
		all      bool
		weights  map[string]int
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Rank systems by weighted effectiveness",
		Long: `Score every system as the sum of the weights of the features it supports
and rank them by descending score. Equal scores keep catalog order.

Examples:
  posfit score -s 2
  posfit score --all --json
  posfit score --weight pos=30,inventory=10,loyalty=10,payment=20,analytics=10,mobile=10,offline=10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			scoreUC := usecase.NewScoreUseCase(a.catalog, a.logger)

			var rankings []domain.Ranking
			switch {
			case all:
				r, err := scoreUC.RankAll()
				if err != nil {
					return err
				}
				rankings = r
			case len(weights) > 0:
				r, err := scoreUC.Rank(domain.WeightSet{ID: 0, Name: "custom", Weights: weights})
				if err != nil {
					return err
				}
				rankings = append(rankings, r)
			default:
				if scenario == 0 {
					scenario = a.cfg.Scoring.DefaultScenario
				}
				r, err := scoreUC.RankScenario(scenario)
				if err != nil {
					return err
				}
				rankings = append(rankings, r)
			}

			if asJSON {
				if all {
					return writeJSON(out, rankings)
				}
				return writeJSON(out, rankings[0])
			}

			rd := render.NewRenderer(out, a.chartWidth(out))
			for i, r := range rankings {
				if i > 0 {
					fmt.Fprintln(out)
				}
				rd.Ranking(r)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&scenario, "scenario", "s", 0, "scenario id (default from config)")
	cmd.Flags().BoolVar(&all, "all", false, "rank under every scenario")
	cmd.Flags().StringToIntVar(&weights, "weight", nil, "custom weights as key=value, one per feature")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.MarkFlagsMutuallyExclusive("scenario", "all", "weight")
	return cmd
}
