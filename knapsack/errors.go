// SPDX-License-Identifier: MIT

// Package knapsack: sentinel error set.
// Every solver returns one of these sentinels on invalid input and tests match
// them via errors.Is. Messages are prefixed with "knapsack: ..." for grepping.
// Callers that need context wrap at their own boundary with
// fmt.Errorf("ctx: %w", ErrX).
//
// ERROR PRIORITY (validateItems, then checkTableSize):
// capacity -> value NaN/Inf -> negative value -> negative cost -> zero cost
// -> table size.

package knapsack

import "errors"

var (
	// ErrNegativeCapacity is returned when the capacity bound is below zero.
	ErrNegativeCapacity = errors.New("knapsack: capacity must be non-negative")

	// ErrNegativeCost is returned when an item carries a negative cost.
	ErrNegativeCost = errors.New("knapsack: item cost must be non-negative")

	// ErrNegativeValue is returned when an item carries a negative value.
	ErrNegativeValue = errors.New("knapsack: item value must be non-negative")

	// ErrInvalidValue signals a NaN or ±Inf item value.
	ErrInvalidValue = errors.New("knapsack: item value must be finite")

	// ErrZeroCost is returned by the greedy heuristic only: density value/cost
	// is undefined for a free item. Exact solvers accept zero-cost items.
	ErrZeroCost = errors.New("knapsack: greedy requires positive item cost")

	// ErrStartOutOfRange indicates a brute-force start index outside [0..N].
	ErrStartOutOfRange = errors.New("knapsack: start index out of range")

	// ErrTooManyItems is returned by the dispatcher when brute force is asked
	// to enumerate more items than Options.MaxBruteForceItems allows.
	ErrTooManyItems = errors.New("knapsack: too many items for brute force")

	// ErrUnsupportedAlgorithm marks an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("knapsack: unsupported algorithm")

	// ErrUnsupportedMemoryMode marks an unknown MemoryMode value.
	ErrUnsupportedMemoryMode = errors.New("knapsack: unsupported memory mode")

	// ErrSelectionNeedsTable indicates that item reconstruction was requested
	// with MemoryMode=TwoRows, which keeps no table to backtrack through.
	ErrSelectionNeedsTable = errors.New("knapsack: selection requires MemoryMode=FullTable")

	// ErrIndexOutOfBounds indicates a Table lookup outside [0..N]×[0..C].
	ErrIndexOutOfBounds = errors.New("knapsack: table index out of bounds")

	// ErrTableTooLarge is returned by the pseudo-polynomial solvers (table,
	// rolling rows, memo) when (N+1)·(C+1) overflows int or exceeds the
	// configured cell cap.
	ErrTableTooLarge = errors.New("knapsack: DP table too large")

	// ErrDuplicateName is returned by Catalog.Validate when two items share a name.
	ErrDuplicateName = errors.New("knapsack: duplicate item name")
)
