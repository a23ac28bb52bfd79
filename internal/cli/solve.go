package cli

import (
	"github.com/spf13/cobra"

	"github.com/jota0802/gs-dynamic/internal/logging"
	"github.com/jota0802/gs-dynamic/internal/report"
	"github.com/jota0802/gs-dynamic/knapsack"
)

func newSolveCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Solve the catalog with one strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := a.loadCatalog()
			if err != nil {
				return err
			}
			opts, err := a.cfg.Options()
			if err != nil {
				return err
			}

			sol, err := a.solve(cat, opts)
			if err != nil {
				return err
			}
			a.log.Info("solved", "catalog", cat.Name, "algorithm", sol.Algo.String(),
				"value", sol.Value, "exact", sol.Exact)

			return report.WriteSolve(cmd.OutOrStdout(), a.format, report.SolveReport{
				Catalog:  cat.Name,
				Capacity: cat.Capacity,
				Solution: report.NewSolutionView(sol),
			})
		},
	}
}

// solve runs the configured strategy. At TRACE level a full-table tabular
// solve keeps its table and logs it; the table is built once either way.
func (a *app) solve(cat knapsack.Catalog, opts knapsack.Options) (knapsack.Solution, error) {
	trace := a.log.V(logging.TRACE)
	if opts.Algo != knapsack.Tabular || !opts.ReturnSelection || !trace.Enabled() {
		return knapsack.SolveCatalog(cat, opts)
	}

	if err := cat.Validate(); err != nil {
		return knapsack.Solution{}, err
	}
	tbl, err := knapsack.BuildTableWithLimit(cat.Items, cat.Capacity, opts.MaxTableCells)
	if err != nil {
		return knapsack.Solution{}, err
	}
	trace.Info("dp table", "rows", tbl.Rows(), "cols", tbl.Cols(), "table", tbl.String())

	return tbl.Solution(), nil
}
