// SPDX-License-Identifier: MIT

// Package knapsack: domain types shared by every solver.
// This file contains ONLY the input representation (Item, Catalog), the
// result shape (Solution) and the algorithm/memory enums. Errors live in
// errors.go, options in options.go.
package knapsack

import (
	"fmt"
	"strings"
)

// Item is one candidate project: a name for reporting, the value it brings
// and the cost it consumes from the shared capacity.
//
// Value must be finite and ≥ 0. Cost is expressed in discrete units (the
// same unit as the capacity) and must be ≥ 0; the greedy heuristic further
// requires Cost > 0.
type Item struct {
	Name  string  `yaml:"name" json:"name"`
	Value float64 `yaml:"value" json:"value"`
	Cost  int     `yaml:"cost" json:"cost"`
}

// Density returns Value/Cost, the greedy ranking key.
// The caller guarantees Cost > 0.
func (it Item) Density() float64 {
	return it.Value / float64(it.Cost)
}

// Catalog is an ordered item set plus the capacity bound it is solved under.
// Order carries no meaning for the optimum but is the addressing order of
// every index-based solver, so it must stay stable between calls.
type Catalog struct {
	Name     string `yaml:"name,omitempty" json:"name,omitempty"`
	Capacity int    `yaml:"capacity" json:"capacity"`
	Items    []Item `yaml:"items" json:"items"`
}

// Validate checks the numeric contract shared by the exact solvers and that
// item names are unique (names identify items in reports).
//
// Complexity: O(N) time, O(N) extra space for the name set.
func (c Catalog) Validate() error {
	if err := validateItems(c.Items, c.Capacity, false); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(c.Items))
	for _, it := range c.Items {
		if _, dup := seen[it.Name]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateName, it.Name)
		}
		seen[it.Name] = struct{}{}
	}

	return nil
}

// Clone returns a deep copy whose Items slice is independent of c.
func (c Catalog) Clone() Catalog {
	out := c
	out.Items = append([]Item(nil), c.Items...)

	return out
}

// TotalCost sums the cost of every item in the catalog.
func (c Catalog) TotalCost() int {
	var sum int
	for _, it := range c.Items {
		sum += it.Cost
	}

	return sum
}

// Solution is the outcome of one solve call. It is built fresh per call and
// shares no storage with the input slice.
type Solution struct {
	// Algo names the strategy that produced the solution.
	Algo Algorithm

	// Value is the total value of the selection (the optimum for exact
	// strategies).
	Value float64

	// Items is the selection: catalog order for Tabular, acceptance order
	// for Greedy. Value-only strategies (BruteForce, Memoized, Tabular
	// under TwoRows) leave it nil.
	Items []Item

	// CapacityUsed is the summed cost of Items.
	CapacityUsed int

	// Exact reports whether Value is guaranteed optimal.
	Exact bool
}

// Names returns the names of the selected items in Items order.
func (s Solution) Names() []string {
	names := make([]string, len(s.Items))
	for i, it := range s.Items {
		names[i] = it.Name
	}

	return names
}

// HasSelection reports whether the strategy recovered the chosen items.
// Strategies that recover a selection always return a non-nil slice, even
// when it is empty.
func (s Solution) HasSelection() bool {
	return s.Items != nil
}

// Algorithm selects the solving strategy.
type Algorithm int

const (
	// Greedy ranks items by density and takes a single pass. Inexact.
	Greedy Algorithm = iota

	// BruteForce enumerates all 2^N include/exclude combinations. Exact.
	BruteForce

	// Memoized is brute force with a (index, capacity) cache. Exact.
	Memoized

	// Tabular fills the (N+1)×(C+1) table and backtracks the selection. Exact.
	Tabular
)

var algorithmNames = [...]string{
	Greedy:     "greedy",
	BruteForce: "bruteforce",
	Memoized:   "memoized",
	Tabular:    "table",
}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// ParseAlgorithm maps a case-insensitive name back to an Algorithm.
// "dp" and "tabular" are accepted as aliases of Tabular, "memo" of Memoized.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "greedy":
		return Greedy, nil
	case "bruteforce", "brute-force", "recursive":
		return BruteForce, nil
	case "memoized", "memo":
		return Memoized, nil
	case "table", "tabular", "dp":
		return Tabular, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
}

// Algorithms lists every strategy in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{Greedy, BruteForce, Memoized, Tabular}
}

// MemoryMode controls how the tabular solver stores its DP table.
//
//   - FullTable - keep the entire (N+1)×(C+1) table. Supports reconstruction
//     of the selected items. Memory: O(N·C).
//
//   - TwoRows - keep only the previous and current rows. Memory: O(C),
//     value only.
type MemoryMode int

const (
	// FullTable mode: store all rows, support reconstruction.
	FullTable MemoryMode = iota

	// TwoRows mode: keep two rows, no reconstruction.
	TwoRows
)

// String implements fmt.Stringer.
func (m MemoryMode) String() string {
	switch m {
	case FullTable:
		return "full"
	case TwoRows:
		return "tworows"
	default:
		return fmt.Sprintf("MemoryMode(%d)", int(m))
	}
}

// ParseMemoryMode maps "full" / "tworows" (case-insensitive) to a MemoryMode.
func ParseMemoryMode(s string) (MemoryMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "full", "fulltable", "":
		return FullTable, nil
	case "tworows", "rolling":
		return TwoRows, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedMemoryMode, s)
}
