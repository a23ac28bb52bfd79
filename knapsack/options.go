// SPDX-License-Identifier: MIT

// Package knapsack: solver configuration.
// Options is a plain struct (no hidden state) consumed by Solve and Compare.
// Start from DefaultOptions and override fields.
package knapsack

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultAlgo is the strategy used by Solve when none is chosen.
	DefaultAlgo = Tabular

	// DefaultMemory keeps the full table so the selection can be recovered.
	DefaultMemory = FullTable

	// DefaultReturnSelection asks Tabular to backtrack the chosen items.
	DefaultReturnSelection = true

	// DefaultMaxBruteForceItems caps the exhaustive search. 2^25 leaves
	// roughly 3·10^7 recursive calls, still interactive on one core.
	DefaultMaxBruteForceItems = 25

	// DefaultParallel lets Compare run the strategies concurrently.
	DefaultParallel = true

	// DefaultMaxTableCells caps (N+1)·(C+1) for the table, rolling and memo
	// solvers: 1<<26 float64 cells is 512 MiB for the full table.
	DefaultMaxTableCells = 1 << 26
)

// Options configures Solve and Compare.
//
// Fields:
//   - Algo               - strategy used by Solve.
//   - Memory             - table storage for Tabular (FullTable or TwoRows).
//     TwoRows yields the value only.
//   - ReturnSelection    - Tabular backtracks the selected items. Requires
//     Memory=FullTable (ErrSelectionNeedsTable otherwise).
//   - MaxBruteForceItems - largest catalog BruteForce will enumerate;
//     0 means unlimited. Solve fails with ErrTooManyItems above it, Compare
//     skips the brute-force run instead.
//   - Parallel           - Compare runs strategies in separate goroutines.
//   - MaxTableCells      - largest (N+1)·(C+1) the table, rolling and memo
//     solvers accept; 0 means only the int-overflow check applies.
//     Above it they fail with ErrTableTooLarge.
type Options struct {
	Algo               Algorithm
	Memory             MemoryMode
	ReturnSelection    bool
	MaxBruteForceItems int
	Parallel           bool
	MaxTableCells      int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Algo:               DefaultAlgo,
		Memory:             DefaultMemory,
		ReturnSelection:    DefaultReturnSelection,
		MaxBruteForceItems: DefaultMaxBruteForceItems,
		Parallel:           DefaultParallel,
		MaxTableCells:      DefaultMaxTableCells,
	}
}

// bruteForceAllowed reports whether n items fit under the brute-force cap.
func (o Options) bruteForceAllowed(n int) bool {
	return o.MaxBruteForceItems == 0 || n <= o.MaxBruteForceItems
}
