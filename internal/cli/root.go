package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
	"posfit/config"
	"posfit/internal/catalog"
	"posfit/internal/logger"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	cfgFile     string
	rootDir     string
	catalogFile string
	logLevel    string

	cfg     *config.Config
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewRootCmd builds the posfit command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "posfit",
		Short: "POS system picker - match, score and stress-test POS systems",
		Long: `posfit helps choose a point-of-sale system for a retail or hospitality
venue. It filters a fixed catalog of POS systems by required features,
scores them under weighted scenarios and stress-tests the scoring against
randomly generated systems.

Example usage:
  posfit match -f loyalty -f payment   # Systems supporting both features
  posfit score --all                   # Effectiveness under every scenario
  posfit stress -n 1000 --seed 7       # Score distribution of random systems
  posfit report                        # Every chart at once`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./posfit.yaml)")
	root.PersistentFlags().StringVarP(&a.rootDir, "dir", "d", "", "working directory for config lookup (default is current directory)")
	root.PersistentFlags().StringVar(&a.catalogFile, "catalog", "", "catalog YAML file replacing the built-in systems")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")

	root.AddCommand(
		newFeaturesCmd(a),
		newSystemsCmd(a),
		newScenariosCmd(a),
		newVenuesCmd(a),
		newMatchCmd(a),
		newScoreCmd(a),
		newStressCmd(a),
		newReportCmd(a),
	)

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup() error {
	var err error

	if a.rootDir == "" {
		a.rootDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromDir(a.rootDir)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	level := a.cfg.Logging.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	a.logger, err = logger.NewLogger(a.cfg.Logging.Env, level)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	path := a.catalogFile
	if path == "" {
		path = a.cfg.CatalogPath(a.rootDir)
	}
	if path == "" {
		a.catalog = catalog.Default()
	} else {
		a.catalog, err = catalog.LoadFile(path)
		if err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
	}

	a.logger.Debug("catalog ready",
		zap.String("source", sourceName(path)),
		zap.Int("features", len(a.catalog.Features())),
		zap.Int("systems", len(a.catalog.Systems())),
		zap.Int("scenarios", len(a.catalog.Scenarios())),
	)
	return nil
}

func sourceName(path string) string {
	if path == "" {
		return "builtin"
	}
	return path
}

// chartWidth returns the bar width: the configured value, or a share of the
// terminal width when out is a terminal.
func (a *app) chartWidth(out io.Writer) int {
	if a.cfg.Render.Width > 0 {
		return a.cfg.Render.Width
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil {
			return min(max(w-40, 10), 80)
		}
	}
	return 40
}

func writeJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}
