// Package knapsack_test provides fixtures and helpers shared across *_test.go
// files in this package.
package knapsack_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/jota0802/gs-dynamic/knapsack"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------
// Fixtures - single source of truth for test catalogs
// -----------------------------------------------------------------------------

// basicItems is the four-project portfolio; optimum 29 (A+B+C) at capacity 10.
func basicItems() []knapsack.Item {
	return []knapsack.Item{
		{Name: "A", Value: 12, Cost: 4},
		{Name: "B", Value: 10, Cost: 3},
		{Name: "C", Value: 7, Cost: 2},
		{Name: "D", Value: 4, Cost: 3},
	}
}

// greedyTrapItems defeats the density heuristic at capacity 50:
// greedy takes X+Y (160), the optimum is Y+Z (220).
func greedyTrapItems() []knapsack.Item {
	return []knapsack.Item{
		{Name: "X", Value: 60, Cost: 10},
		{Name: "Y", Value: 100, Cost: 20},
		{Name: "Z", Value: 120, Cost: 30},
	}
}

// sixItems has optimum 58 (A+D+E+F) at capacity 20; greedy reaches 53.
func sixItems() []knapsack.Item {
	return []knapsack.Item{
		{Name: "A", Value: 15, Cost: 5},
		{Name: "B", Value: 20, Cost: 8},
		{Name: "C", Value: 30, Cost: 12},
		{Name: "D", Value: 10, Cost: 3},
		{Name: "E", Value: 25, Cost: 10},
		{Name: "F", Value: 8, Cost: 2},
	}
}

// equalDensityItems all have density 5; greedy 90, optimum 100 at capacity 20.
func equalDensityItems() []knapsack.Item {
	return []knapsack.Item{
		{Name: "Website", Value: 50, Cost: 10},
		{Name: "App Mobile", Value: 40, Cost: 8},
		{Name: "Dashboard", Value: 30, Cost: 6},
		{Name: "API", Value: 20, Cost: 4},
	}
}

// rampItems builds P1..Pn with value i*10+5 and cost i*2+1.
// For n=10 at capacity 30 the optimum is 150.
func rampItems(n int) []knapsack.Item {
	items := make([]knapsack.Item, n)
	for i := 1; i <= n; i++ {
		items[i-1] = knapsack.Item{
			Name:  fmt.Sprintf("P%d", i),
			Value: float64(i*10 + 5),
			Cost:  i*2 + 1,
		}
	}

	return items
}

// randomItems returns n items with integral values in [0,maxValue] and costs
// in [minCost,maxCost], deterministic for a given seed.
func randomItems(seed int64, n, minCost, maxCost, maxValue int) []knapsack.Item {
	rng := rand.New(rand.NewSource(seed))
	items := make([]knapsack.Item, n)
	for i := range items {
		items[i] = knapsack.Item{
			Name:  fmt.Sprintf("R%d", i),
			Value: float64(rng.Intn(maxValue + 1)),
			Cost:  minCost + rng.Intn(maxCost-minCost+1),
		}
	}

	return items
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// sumSelection returns the summed value and cost of sel.
func sumSelection(sel []knapsack.Item) (float64, int) {
	var (
		v float64
		c int
	)
	for _, it := range sel {
		v += it.Value
		c += it.Cost
	}

	return v, c
}

// requireConsistent checks that a reconstructed selection is feasible and
// accounts exactly for the reported value and capacity.
func requireConsistent(t *testing.T, sol knapsack.Solution, capacity int) {
	t.Helper()
	v, c := sumSelection(sol.Items)
	require.Equal(t, sol.Value, v, "selection value must equal reported value")
	require.Equal(t, sol.CapacityUsed, c, "selection cost must equal CapacityUsed")
	require.LessOrEqual(t, c, capacity, "selection must respect capacity")
}

// exactValues runs the three exact strategies and returns their values.
func exactValues(t *testing.T, items []knapsack.Item, capacity int) (bf, memo, table float64) {
	t.Helper()
	var err error
	bf, err = knapsack.SolveBruteForce(items, capacity)
	require.NoError(t, err)
	memo, err = knapsack.SolveMemoized(items, capacity)
	require.NoError(t, err)
	sol, err := knapsack.SolveDPTable(items, capacity)
	require.NoError(t, err)

	return bf, memo, sol.Value
}
