// Package knapsack - validation helpers shared by every solver.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(N) worst case; no allocations.
package knapsack

import (
	"fmt"
	"math"
)

// validateItems enforces the input contract common to all solvers.
//
// Contract:
//   - capacity ≥ 0.
//   - every Value is finite and ≥ 0.
//   - every Cost is ≥ 0; when positiveCost is set (greedy density), Cost > 0.
//
// Complexity: O(N).
func validateItems(items []Item, capacity int, positiveCost bool) error {
	if capacity < 0 {
		return ErrNegativeCapacity
	}

	var it Item
	for _, it = range items {
		if math.IsNaN(it.Value) || math.IsInf(it.Value, 0) {
			return ErrInvalidValue
		}
		if it.Value < 0 {
			return ErrNegativeValue
		}
		if it.Cost < 0 {
			return ErrNegativeCost
		}
		if positiveCost && it.Cost == 0 {
			return ErrZeroCost
		}
	}

	return nil
}

// validateOptions checks Options without looking at the items.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.Algo {
	case Greedy, BruteForce, Memoized, Tabular:
	default:
		return ErrUnsupportedAlgorithm
	}
	switch opts.Memory {
	case FullTable, TwoRows:
	default:
		return ErrUnsupportedMemoryMode
	}
	if opts.ReturnSelection && opts.Memory != FullTable {
		return ErrSelectionNeedsTable
	}
	if opts.MaxBruteForceItems < 0 {
		return ErrTooManyItems
	}
	if opts.MaxTableCells < 0 {
		return ErrTableTooLarge
	}

	return nil
}

// freeSuffix returns s where s[i] is the summed value of the zero-cost items
// at index ≥ i (len(s) == N+1, s[N] == 0). With no capacity left these items
// are the only ones a selection can still take, so s[i] is the exact answer
// of the recursive solvers' c == 0 base case. It is all zeros when the
// catalog has no free item.
//
// Complexity: O(N) time and space.
func freeSuffix(items []Item) []float64 {
	s := make([]float64, len(items)+1)
	for i := len(items) - 1; i >= 0; i-- {
		s[i] = s[i+1]
		if items[i].Cost == 0 {
			s[i] += items[i].Value
		}
	}

	return s
}

// checkTableSize guards the O(N·C) solvers: (n+1)·(capacity+1) must not
// overflow int and, when maxCells > 0, must not exceed it.
// capacity is already known to be ≥ 0.
//
// Complexity: O(1).
func checkTableSize(n, capacity, maxCells int) error {
	if capacity == math.MaxInt {
		return fmt.Errorf("%w: capacity %d", ErrTableTooLarge, capacity)
	}
	rows, cols := n+1, capacity+1
	if cols > math.MaxInt/rows {
		return fmt.Errorf("%w: %d×%d cells overflow int", ErrTableTooLarge, rows, cols)
	}
	if maxCells > 0 && rows*cols > maxCells {
		return fmt.Errorf("%w: %d×%d cells, limit %d", ErrTableTooLarge, rows, cols, maxCells)
	}

	return nil
}
