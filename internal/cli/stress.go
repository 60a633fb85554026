package cli

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"posfit/internal/adapter/render"
	"posfit/internal/usecase"
)

type stressResult struct {
	Scenario int             `json:"scenario"`
	Seed     uint64          `json:"seed,omitempty"`
	Scores   []int           `json:"scores"`
	Summary  render.Summary  `json:"summary"`
	Buckets  []render.Bucket `json:"buckets"`
}

func newStressCmd(a *app) *cobra.Command {
	var (
		samples    int
		scenario   int
		seed       uint64
		bins       int
		asJSON     bool
		noProgress bool
	)

	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Score randomly generated systems to show the score distribution",
		Long: `Generate synthetic systems whose features are each supported with
probability 1/2, score them under a scenario and show the distribution.

Examples:
  posfit stress
  posfit stress -n 5000 -s 3 --seed 42 --bins 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.stressDefaults(cmd, &samples, &scenario, &seed, &bins)
			out := cmd.OutOrStdout()

			var progress usecase.ProgressFunc
			if !noProgress && !asJSON {
				bar := newProgressBar(cmd.ErrOrStderr(), samples)
				progress = func(done, total int) { _ = bar.Set(done) }
			}

			scores, err := a.sample(samples, scenario, seed, progress)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(out, stressResult{
					Scenario: scenario,
					Seed:     seed,
					Scores:   scores,
					Summary:  render.Summarize(scores),
					Buckets:  render.Bin(scores, bins),
				})
			}

			title := fmt.Sprintf("Stress test: effectiveness of %d random systems (scenario %d)", samples, scenario)
			render.NewRenderer(out, a.chartWidth(out)).Histogram(title, scores, bins)
			return nil
		},
	}
	cmd.Flags().IntVarP(&samples, "samples", "n", 0, "number of synthetic systems (default from config)")
	cmd.Flags().IntVarP(&scenario, "scenario", "s", 0, "scenario id (default from config)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed, 0 for a random run (default from config)")
	cmd.Flags().IntVar(&bins, "bins", 0, "histogram bins (default from config)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "hide the progress bar")
	return cmd
}

// stressDefaults fills flags the user left unset from the config.
func (a *app) stressDefaults(cmd *cobra.Command, samples, scenario *int, seed *uint64, bins *int) {
	if !cmd.Flags().Changed("samples") {
		*samples = a.cfg.Stress.Samples
	}
	if *scenario == 0 {
		*scenario = a.cfg.Stress.Scenario
	}
	if !cmd.Flags().Changed("seed") {
		*seed = a.cfg.Stress.Seed
	}
	if *bins <= 0 {
		*bins = a.cfg.Stress.Bins
	}
}

func (a *app) sample(n, scenario int, seed uint64, progress usecase.ProgressFunc) ([]int, error) {
	var src rand.Source
	if seed != 0 {
		src = usecase.NewSeededSource(seed)
	}
	sampleUC := usecase.NewSampleUseCase(a.catalog, src, a.logger)

	scores, err := sampleUC.SampleScenario(n, scenario, progress)
	if err != nil {
		return nil, err
	}

	a.logger.Info("stress test complete",
		zap.Int("samples", n),
		zap.Int("scenario", scenario),
		zap.Uint64("seed", seed),
	)
	return scores, nil
}

func newProgressBar(w io.Writer, total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(false),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetDescription("[cyan]Sampling[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(w)
		}),
	)
}
