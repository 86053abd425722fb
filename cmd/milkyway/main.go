// Command milkyway projects a star catalog into a galactic frame and shows it
// in the terminal.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ulysse71/milky-way/internal/astro"
	"github.com/ulysse71/milky-way/internal/catalog"
	"github.com/ulysse71/milky-way/internal/config"
	"github.com/ulysse71/milky-way/internal/logging"
	"github.com/ulysse71/milky-way/internal/metrics"
	"github.com/ulysse71/milky-way/internal/projection"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app carries what every subcommand needs once flags and config are read.
type app struct {
	v           *viper.Viper
	cfgFile     string
	metricsFile string

	cfg     *config.Config
	log     *logging.Logger
	metrics *metrics.Collector
}

// skipConfig marks commands that must run without a valid config.
const skipConfig = "skip-config"

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "milkyway",
		Short: "Project a star catalog into galactic coordinates",
		Long: `milkyway reads a HYG star catalog, builds a Cartesian frame centred on the
galactic center from the Sun, Sgr A* and the galactic north pole, and projects
every star into it. The result can be printed, summarised, rendered to an
image or explored in an interactive terminal viewer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.prepare(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.metricsFile == "" || a.metrics == nil {
				return nil
			}
			if err := a.metrics.WriteTextfile(a.metricsFile); err != nil {
				return err
			}
			a.log.Info("metrics written to %s", a.metricsFile)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default ./milkyway.yaml or ~/.milkyway/milkyway.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("catalog", "", "HYG catalog CSV file")
	flags.Float64("cutoff", projection.DefaultCutoff, "drop stars farther than this from the galactic center")
	flags.Int("workers", 0, "projection goroutines (0 = GOMAXPROCS)")
	flags.StringVar(&a.metricsFile, "metrics-file", "", "write Prometheus metrics to this file when done")

	for key, name := range map[string]string{
		"log_level": "log-level",
		"catalog":   "catalog",
		"cutoff":    "cutoff",
		"workers":   "workers",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	root.AddCommand(
		newProjectCmd(a),
		newStatsCmd(a),
		newSnapshotCmd(a),
		newViewCmd(a),
		newDumpCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)
	return root
}

func (a *app) prepare(cmd *cobra.Command) error {
	a.log = logging.New(logging.LevelInfo)
	a.log.SetOutput(cmd.ErrOrStderr())
	a.metrics = metrics.NewCollector()

	if cmd.Annotations[skipConfig] == "true" {
		return nil
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log.SetLevel(logging.ParseLevel(cfg.LogLevel))
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.Debug("config: %s", used)
	}
	return nil
}

// loadCatalog loads the configured catalog.
func (a *app) loadCatalog() (*catalog.Catalog, error) {
	log := a.log.Named("catalog")
	start := time.Now()

	cat, err := catalog.Load(a.cfg.Catalog)
	if err != nil {
		return nil, err
	}
	log.Info("nb_stars %d (%d lines skipped) in %s", cat.Len(), cat.Stats.Skipped, time.Since(start).Round(time.Millisecond))
	a.metrics.RecordCatalog(cat)
	return cat, nil
}

// buildFrame builds the configured frame and reports how far it is from
// orthogonal.
func (a *app) buildFrame() astro.Frame {
	f := a.cfg.BuildFrame()
	a.log.Named("frame").Info("u.w %g", f.Skew())
	a.metrics.SetFrameSkew(f.Skew())
	return f
}

// project loads the catalog and projects it with the configured cutoff.
func (a *app) project(ctx context.Context) (*catalog.Catalog, astro.Frame, []projection.Point, error) {
	cat, err := a.loadCatalog()
	if err != nil {
		return nil, astro.Frame{}, nil, err
	}
	f := a.buildFrame()

	start := time.Now()
	points, err := projection.ProjectParallel(ctx, cat, f, a.cfg.Cutoff, a.cfg.Workers)
	if err != nil {
		return nil, astro.Frame{}, nil, fmt.Errorf("project: %w", err)
	}
	elapsed := time.Since(start)
	a.metrics.RecordProjection(len(points), elapsed)
	a.log.Named("projection").Debug("%d of %d stars within %g in %s", len(points), cat.Len(), a.cfg.Cutoff, elapsed)
	return cat, f, points, nil
}
