package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"posfit/internal/adapter/render"
	"posfit/internal/adapter/selector"
	"posfit/internal/domain"
	"posfit/internal/port"
	"posfit/internal/usecase"
)

func newMatchCmd(a *app) *cobra.Command {
	var (
		tokens []string
		venue  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Find systems supporting every required feature",
		Long: `Find the systems that support all of the requested features. Features are
given by key, display name or glob pattern over keys.

Examples:
  posfit match -f offline
  posfit match -f loyalty,payment --venue 3
  posfit match -f '{pos,mobile}' --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var resolver port.FeatureResolver = selector.NewSelector(a.catalog.Features())
			keys, err := resolver.Resolve(tokens)
			if err != nil {
				return err
			}

			var v *domain.Venue
			if venue != 0 {
				found, err := a.catalog.Venue(venue)
				if err != nil {
					return err
				}
				v = &found
			}

			matchUC := usecase.NewMatchUseCase(a.catalog, a.logger)
			results, err := matchUC.Match(keys)
			if err != nil {
				return err
			}

			a.logger.Info("match request",
				zap.Strings("features", keys),
				zap.Int("matches", len(results)),
			)

			if asJSON {
				if err := writeJSON(out, results); err != nil {
					return err
				}
			} else if len(results) > 0 {
				required := make([]domain.Feature, 0, len(keys))
				features := a.catalog.Features()
				for _, k := range keys {
					i, _ := a.catalog.FeatureIndex(k)
					required = append(required, features[i])
				}
				render.NewRenderer(out, a.chartWidth(out)).MatchReport(v, required, results)
			}

			if len(results) == 0 {
				return domain.ErrNoMatch
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&tokens, "feature", "f", nil, "required feature (repeatable, comma-separated)")
	cmd.Flags().IntVar(&venue, "venue", 0, "venue type shown in the report (see 'posfit venues')")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
