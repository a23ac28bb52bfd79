package knapsack

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// valueEps is the relative tolerance for comparing optimal values. The
// recursive solvers sum values tail-first and the table head-first, so
// fractional values may differ in the last bits.
const valueEps = 1e-9

// SameValue reports whether a and b are equal up to valueEps relative to
// max(1, |a|, |b|).
func SameValue(a, b float64) bool {
	return math.Abs(a-b) <= valueEps*max(1, math.Abs(a), math.Abs(b))
}

// Comparison gathers one run of every strategy on the same input.
type Comparison struct {
	Greedy     Solution
	BruteForce Solution
	Memoized   Solution
	Tabular    Solution

	// BruteForceSkipped is set when the catalog exceeded
	// Options.MaxBruteForceItems; BruteForce is then the zero Solution.
	BruteForceSkipped bool
}

// Optimum returns the optimal value (the tabular result).
func (c Comparison) Optimum() float64 {
	return c.Tabular.Value
}

// Agree reports whether every exact strategy that ran produced the same
// value (see SameValue).
func (c Comparison) Agree() bool {
	if !SameValue(c.Memoized.Value, c.Tabular.Value) {
		return false
	}

	return c.BruteForceSkipped || SameValue(c.BruteForce.Value, c.Tabular.Value)
}

// GreedyOptimal reports whether the heuristic happened to reach the optimum.
func (c Comparison) GreedyOptimal() bool {
	return SameValue(c.Greedy.Value, c.Optimum())
}

// GreedyGap returns optimum − greedy value (≥ 0); 0 when GreedyOptimal.
func (c Comparison) GreedyGap() float64 {
	if c.GreedyOptimal() {
		return 0
	}

	return c.Optimum() - c.Greedy.Value
}

// Solutions returns the solutions that ran, in Algorithms() order.
func (c Comparison) Solutions() []Solution {
	out := make([]Solution, 0, 4)
	out = append(out, c.Greedy)
	if !c.BruteForceSkipped {
		out = append(out, c.BruteForce)
	}

	return append(out, c.Memoized, c.Tabular)
}

// Compare runs all four strategies on items under capacity.
//
// Brute force is skipped (BruteForceSkipped) when len(items) exceeds
// opts.MaxBruteForceItems. The tabular run always keeps the full table so
// the optimal selection is reported. opts.Algo and opts.Memory are ignored.
//
// With opts.Parallel each strategy runs in its own goroutine: solvers share
// only the read-only items slice. The first error wins.
//
// Errors: ErrTableTooLarge above opts.MaxTableCells, and the input
// sentinels of the failing strategy (ErrZeroCost comes
// from the greedy run and fails the whole comparison).
func Compare(items []Item, capacity int, opts Options) (Comparison, error) {
	if opts.MaxTableCells < 0 {
		return Comparison{}, ErrTableTooLarge
	}

	var (
		cmp Comparison
		g   errgroup.Group
	)
	if !opts.Parallel {
		g.SetLimit(1)
	}
	cmp.BruteForceSkipped = !opts.bruteForceAllowed(len(items))

	g.Go(func() (err error) {
		cmp.Greedy, err = SolveGreedy(items, capacity)
		return err
	})
	if !cmp.BruteForceSkipped {
		g.Go(func() error {
			v, err := SolveBruteForce(items, capacity)
			cmp.BruteForce = Solution{Algo: BruteForce, Value: v, Exact: true}
			return err
		})
	}
	g.Go(func() error {
		v, _, err := solveMemoized(items, capacity, opts.MaxTableCells)
		cmp.Memoized = Solution{Algo: Memoized, Value: v, Exact: true}
		return err
	})
	g.Go(func() (err error) {
		cmp.Tabular, err = solveDPTable(items, capacity, opts.MaxTableCells)
		return err
	})

	if err := g.Wait(); err != nil {
		return Comparison{}, err
	}

	return cmp, nil
}
