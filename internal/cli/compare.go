package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/jota0802/gs-dynamic/internal/report"
	"github.com/jota0802/gs-dynamic/knapsack"
)

// errDisagreement means the exact strategies returned different optima.
var errDisagreement = errors.New("exact strategies disagree")

func newCompareCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Run every strategy on the catalog and compare the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}
			if err = cat.Validate(); err != nil {
				return err
			}
			opts, err := a.cfg.Options()
			if err != nil {
				return err
			}

			res, err := knapsack.Compare(cat.Items, cat.Capacity, opts)
			if err != nil {
				return err
			}
			if res.BruteForceSkipped {
				a.log.Info("brute force skipped", "items", len(cat.Items), "max", opts.MaxBruteForceItems)
			}
			if !res.GreedyOptimal() {
				a.log.Info("greedy heuristic missed the optimum",
					"greedy", res.Greedy.Value, "optimum", res.Optimum(), "gap", res.GreedyGap())
			}

			r := report.NewComparisonReport(cat.Name, cat.Capacity, res)
			if err := report.WriteComparison(cmd.OutOrStdout(), a.format, r); err != nil {
				return err
			}
			if !res.Agree() {
				a.log.Error(errDisagreement, "comparison failed", "catalog", cat.Name)
				return errDisagreement
			}

			return nil
		},
	}
}
