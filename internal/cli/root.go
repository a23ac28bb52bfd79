// Package cli wires the portfolio command tree: configuration, logging,
// dataset loading, solving and rendering.
package cli

import (
	"fmt"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jota0802/gs-dynamic/catalog"
	"github.com/jota0802/gs-dynamic/internal/config"
	"github.com/jota0802/gs-dynamic/internal/logging"
	"github.com/jota0802/gs-dynamic/internal/report"
	"github.com/jota0802/gs-dynamic/knapsack"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	format  report.Format

	log       logr.Logger
	logPreset bool
	logOut    io.Writer
}

// Option customizes the command tree.
type Option func(*app)

// WithLogger makes every command log to l instead of the configured zap sink.
func WithLogger(l logr.Logger) Option {
	return func(a *app) {
		a.log = l
		a.logPreset = true
	}
}

// WithLogOutput sends the configured zap sink to w (default stderr).
func WithLogOutput(w io.Writer) Option {
	return func(a *app) { a.logOut = w }
}

// NewRootCommand builds the portfolio command tree.
func NewRootCommand(opts ...Option) *cobra.Command {
	a := &app{v: config.New(), log: logr.Discard()}
	for _, o := range opts {
		o(a)
	}

	root := &cobra.Command{
		Use:   "portfolio",
		Short: "Select the project portfolio of maximum value under a budget",
		Long: `portfolio solves the 0/1 knapsack problem over a catalog of projects
with a greedy heuristic, brute force, memoized recursion or a DP table.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (yaml, json or toml)")
	pf.String("catalog", "", "catalog file (.yaml, .yml or .json); wins over --dataset")
	pf.String("dataset", config.DefaultDataset, "built-in dataset name (see 'portfolio datasets')")
	pf.Int("capacity", config.DefaultCapacity, "capacity override; -1 keeps the catalog's own")
	pf.String("algorithm", knapsack.DefaultAlgo.String(), "greedy, bruteforce, memoized or table")
	pf.String("memory", knapsack.DefaultMemory.String(), "table storage: full or tworows (value only)")
	pf.Int("max-bruteforce-items", knapsack.DefaultMaxBruteForceItems, "largest catalog enumerated by brute force; 0 = unlimited")
	pf.Bool("parallel", knapsack.DefaultParallel, "run compared strategies concurrently")
	pf.Int("max-table-cells", knapsack.DefaultMaxTableCells, "largest (items+1)*(capacity+1) for the table and memo solvers; 0 = no cap")
	pf.StringP("output", "o", config.DefaultOutput, "output format: text or json")
	pf.String("log-level", config.DefaultLogLevel, "error, warn, info, debug or trace")
	pf.String("log-format", config.DefaultLogFmt, "console or json")

	root.AddCommand(newSolveCommand(a), newCompareCommand(a), newDatasetsCommand(a))

	return root
}

// setup resolves configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if err := config.BindFlags(a.v, cmd.Flags()); err != nil {
		return err
	}
	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.format, err = report.ParseFormat(cfg.Output); err != nil {
		return err
	}
	if !a.logPreset {
		lopts := cfg.LoggingOptions()
		lopts.Output = a.logOut
		if a.log, err = logging.New(lopts); err != nil {
			return err
		}
	}
	a.log.V(logging.TRACE).Info("configuration resolved", "config", fmt.Sprintf("%+v", cfg))

	return nil
}

// loadCatalog returns the configured catalog with the capacity override applied.
func (a *app) loadCatalog() (knapsack.Catalog, error) {
	var (
		cat knapsack.Catalog
		err error
	)
	if a.cfg.Catalog != "" {
		cat, err = catalog.LoadFile(a.cfg.Catalog)
	} else {
		cat, err = catalog.Builtin(a.cfg.Dataset)
	}
	if err != nil {
		return knapsack.Catalog{}, err
	}

	if a.cfg.Capacity >= 0 {
		a.log.V(logging.DEBUG).Info("capacity overridden",
			"catalog", cat.Name, "from", cat.Capacity, "to", a.cfg.Capacity)
		cat.Capacity = a.cfg.Capacity
	}
	a.log.V(logging.DEBUG).Info("catalog loaded",
		"catalog", cat.Name, "items", len(cat.Items), "capacity", cat.Capacity)

	return cat, nil
}
