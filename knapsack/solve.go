// Package knapsack - unified dispatcher.
//
// Solve is the canonical entry point: it validates Options, then routes to
// one strategy and wraps its output in a Solution. The strategy functions
// (SolveGreedy, SolveBruteForce, SolveMemoized, SolveTabular) stay public
// for callers that want a single method without the dispatch.
package knapsack

// Solve validates opts and runs opts.Algo on items under capacity.
//
// Contracts:
//   - BruteForce refuses len(items) > opts.MaxBruteForceItems (unless 0) with
//     ErrTooManyItems; the cap is the caller's time bound.
//   - Tabular honours opts.Memory and opts.ReturnSelection.
//   - Memoized and Tabular refuse (N+1)·(C+1) > opts.MaxTableCells
//     (unless 0) with ErrTableTooLarge.
//   - Value-only strategies return a Solution with nil Items.
//
// Errors: ErrUnsupportedAlgorithm, ErrUnsupportedMemoryMode,
// ErrSelectionNeedsTable, ErrTooManyItems, ErrTableTooLarge (Memoized and
// Tabular above opts.MaxTableCells), and the input sentinels of the
// chosen strategy.
func Solve(items []Item, capacity int, opts Options) (Solution, error) {
	if err := validateOptions(opts); err != nil {
		return Solution{}, err
	}

	switch opts.Algo {
	case Greedy:
		return SolveGreedy(items, capacity)

	case BruteForce:
		if !opts.bruteForceAllowed(len(items)) {
			return Solution{}, ErrTooManyItems
		}
		v, err := SolveBruteForce(items, capacity)
		if err != nil {
			return Solution{}, err
		}

		return Solution{Algo: BruteForce, Value: v, Exact: true}, nil

	case Memoized:
		v, _, err := solveMemoized(items, capacity, opts.MaxTableCells)
		if err != nil {
			return Solution{}, err
		}

		return Solution{Algo: Memoized, Value: v, Exact: true}, nil

	case Tabular:
		mode := opts.Memory
		if !opts.ReturnSelection {
			// value only: the cheaper storage gives the same optimum
			mode = TwoRows
		}

		return solveTabular(items, capacity, mode, opts.MaxTableCells)

	default:
		return Solution{}, ErrUnsupportedAlgorithm
	}
}

// SolveCatalog validates the catalog (including unique names) and runs
// Solve on its items and capacity.
func SolveCatalog(cat Catalog, opts Options) (Solution, error) {
	if err := cat.Validate(); err != nil {
		return Solution{}, err
	}

	return Solve(cat.Items, cat.Capacity, opts)
}
