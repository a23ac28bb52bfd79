// Package knapsack - bottom-up DP table with reconstruction.
//
// Table is a concrete, row-major (N+1)×(C+1) grid stored in one flat slice:
// cell (i, c) lives at data[i*cols+c]. Row i holds the optimal value using
// only the first i items; column c is the capacity bound.
package knapsack

import (
	"fmt"
	"strings"
)

// Table holds every subproblem value of one tabular solve.
// It keeps a reference to the (read-only) item slice for reconstruction.
type Table struct {
	rows, cols int       // N+1 and C+1
	data       []float64 // flat backing storage, length == rows*cols
	items      []Item
}

// BuildTable fills the DP table for items under capacity.
//
// Algorithm Outline:
//  1. Allocate (N+1)×(C+1) zeroed cells; row 0 stays 0 (no items ⇒ no value).
//  2. For i = 1..N, c = 0..C:
//     skip = T[i-1][c]
//     take = value[i-1] + T[i-1][c-cost[i-1]]   if cost[i-1] ≤ c
//     T[i][c] = max(skip, take)
//  3. Row-major order resolves both dependencies (row i-1) before use.
//
// Column 0 stays 0 unless zero-cost items exist, in which case it
// accumulates their values (the same answer the recursive solvers give at
// capacity 0).
//
// The table is capped at DefaultMaxTableCells; see BuildTableWithLimit.
//
// Errors: ErrNegativeCapacity, ErrInvalidValue, ErrNegativeValue,
// ErrNegativeCost, ErrTableTooLarge.
//
// Complexity: O(N·C) time and memory.
func BuildTable(items []Item, capacity int) (*Table, error) {
	return BuildTableWithLimit(items, capacity, DefaultMaxTableCells)
}

// BuildTableWithLimit is BuildTable with an explicit cell cap
// (0 = only the overflow check, as Options.MaxTableCells).
func BuildTableWithLimit(items []Item, capacity, maxCells int) (*Table, error) {
	if err := validateItems(items, capacity, false); err != nil {
		return nil, err
	}
	if err := checkTableSize(len(items), capacity, maxCells); err != nil {
		return nil, err
	}

	t := &Table{
		rows:  len(items) + 1,
		cols:  capacity + 1,
		items: items,
	}
	t.data = make([]float64, t.rows*t.cols)

	var (
		i, c int
		it   Item
		prev []float64 // row i-1
		curr []float64 // row i
	)
	for i = 1; i < t.rows; i++ {
		it = items[i-1]
		prev = t.data[(i-1)*t.cols : i*t.cols]
		curr = t.data[i*t.cols : (i+1)*t.cols]
		for c = 0; c < t.cols; c++ {
			curr[c] = prev[c]
			if it.Cost <= c {
				curr[c] = max(curr[c], it.Value+prev[c-it.Cost])
			}
		}
	}

	return t, nil
}

// Rows returns N+1.
func (t *Table) Rows() int { return t.rows }

// Cols returns C+1.
func (t *Table) Cols() int { return t.cols }

// Value returns T[N][C], the optimal value.
func (t *Table) Value() float64 {
	return t.at(t.rows-1, t.cols-1)
}

// At returns T[i][c] or ErrIndexOutOfBounds.
//
// Complexity: O(1).
func (t *Table) At(i, c int) (float64, error) {
	if i < 0 || i >= t.rows || c < 0 || c >= t.cols {
		return 0, fmt.Errorf("Table.At(%d,%d): %w", i, c, ErrIndexOutOfBounds)
	}

	return t.at(i, c), nil
}

// at is the unchecked accessor used on hot paths.
func (t *Table) at(i, c int) float64 { return t.data[i*t.cols+c] }

// Reconstruct backtracks from (N, C) and returns the indices of one optimal
// selection in catalog order.
//
// Walk:
//   - T[i][c] ≠ T[i-1][c] ⇒ item i-1 was necessarily taken: record it,
//     c -= cost[i-1].
//   - otherwise item i-1 was not taken (ties resolve to "not taken").
//   - i-- in both cases; stop at i = 0 or once T[i][c] = 0 (nothing of value
//     left to recover, which is the c = 0 stop for catalogs without free items).
//
// Items are discovered tail-first and reversed before returning. When several
// selections reach the optimum, the one returned is an artifact of this walk,
// not a contract.
//
// Complexity: O(N) time, O(k) space for k selected items.
func (t *Table) Reconstruct() []int {
	picked := make([]int, 0, t.rows-1)

	i, c := t.rows-1, t.cols-1
	for i > 0 && t.at(i, c) > 0 {
		if t.at(i, c) != t.at(i-1, c) {
			picked = append(picked, i-1)
			c -= t.items[i-1].Cost
		}
		i--
	}

	// reverse in-place
	for l, r := 0, len(picked)-1; l < r; l, r = l+1, r-1 {
		picked[l], picked[r] = picked[r], picked[l]
	}

	return picked
}

// Solution converts the table and its reconstruction into a Solution.
func (t *Table) Solution() Solution {
	idx := t.Reconstruct()
	sol := Solution{
		Algo:  Tabular,
		Value: t.Value(),
		Items: make([]Item, len(idx)),
		Exact: true,
	}
	for k, i := range idx {
		sol.Items[k] = t.items[i]
		sol.CapacityUsed += t.items[i].Cost
	}

	return sol
}

// String renders the table one row per line, for debugging.
// Complexity: O(N·C).
func (t *Table) String() string {
	var sb strings.Builder
	var i, c int
	for i = 0; i < t.rows; i++ {
		sb.WriteByte('[')
		for c = 0; c < t.cols; c++ {
			if c > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", t.at(i, c))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// SolveDPTable builds the full table and reconstructs one optimal selection.
//
// Edge cases: empty catalog ⇒ value 0, empty (non-nil) selection; capacity
// 0 ⇒ value 0 (plus free items); an item costing more than the capacity
// never passes the fits-check and is never selected.
//
// Complexity: O(N·C) time and memory; reconstruction O(N).
func SolveDPTable(items []Item, capacity int) (Solution, error) {
	return solveDPTable(items, capacity, DefaultMaxTableCells)
}

func solveDPTable(items []Item, capacity, maxCells int) (Solution, error) {
	t, err := BuildTableWithLimit(items, capacity, maxCells)
	if err != nil {
		return Solution{}, err
	}

	return t.Solution(), nil
}

// SolveDPRolling computes the same optimum as SolveDPTable keeping only two
// rows. It cannot reconstruct the selection. The (N+1)·(C+1) cap of
// BuildTable still applies: it bounds the running time.
//
// Complexity: O(N·C) time, O(C) memory.
func SolveDPRolling(items []Item, capacity int) (float64, error) {
	return solveDPRolling(items, capacity, DefaultMaxTableCells)
}

func solveDPRolling(items []Item, capacity, maxCells int) (float64, error) {
	if err := validateItems(items, capacity, false); err != nil {
		return 0, err
	}
	if err := checkTableSize(len(items), capacity, maxCells); err != nil {
		return 0, err
	}

	cols := capacity + 1
	prev := make([]float64, cols)
	curr := make([]float64, cols)
	var c int
	for _, it := range items {
		for c = 0; c < cols; c++ {
			curr[c] = prev[c]
			if it.Cost <= c {
				curr[c] = max(curr[c], it.Value+prev[c-it.Cost])
			}
		}
		prev, curr = curr, prev
	}

	return prev[capacity], nil
}

// SolveTabular dispatches on the memory mode. FullTable returns the
// selection; TwoRows returns the value with a nil selection.
func SolveTabular(items []Item, capacity int, mode MemoryMode) (Solution, error) {
	return solveTabular(items, capacity, mode, DefaultMaxTableCells)
}

func solveTabular(items []Item, capacity int, mode MemoryMode, maxCells int) (Solution, error) {
	switch mode {
	case FullTable:
		return solveDPTable(items, capacity, maxCells)
	case TwoRows:
		v, err := solveDPRolling(items, capacity, maxCells)
		if err != nil {
			return Solution{}, err
		}

		return Solution{Algo: Tabular, Value: v, Exact: true}, nil
	default:
		return Solution{}, ErrUnsupportedMemoryMode
	}
}
