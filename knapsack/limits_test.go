package knapsack_test

import (
	"math"
	"testing"

	"github.com/jota0802/gs-dynamic/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolveGreedy_HugeCostAfterAccepted: a cost near MaxInt following an
// accepted item must be rejected, not wrap the running total.
func TestSolveGreedy_HugeCostAfterAccepted(t *testing.T) {
	items := []knapsack.Item{
		{Name: "a", Value: 100, Cost: 1},
		{Name: "b", Value: 1, Cost: math.MaxInt},
	}

	g, err := knapsack.SolveGreedy(items, 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, g.Names())
	assert.Equal(t, 100.0, g.Value)
	assert.Equal(t, 1, g.CapacityUsed)

	// both fit only when the capacity is MaxInt itself
	g, err = knapsack.SolveGreedy(items[1:], math.MaxInt)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt, g.CapacityUsed)
}

// TestSameValue pins the relative tolerance used by Comparison.
func TestSameValue(t *testing.T) {
	assert.True(t, knapsack.SameValue(0.1+0.2+0.3, 0.3+0.2+0.1))
	assert.True(t, knapsack.SameValue(0, 0))
	assert.True(t, knapsack.SameValue(1e12, 1e12+1e-4))
	assert.False(t, knapsack.SameValue(1, 1.001))
	assert.False(t, knapsack.SameValue(0, 1e-6))
}

// TestTableSize_Overflow: capacities whose table size overflows int fail
// with ErrTableTooLarge instead of panicking.
func TestTableSize_Overflow(t *testing.T) {
	items := []knapsack.Item{{Name: "a", Value: 1, Cost: 1}}

	for _, capacity := range []int{math.MaxInt, math.MaxInt - 1, math.MaxInt / 2} {
		_, err := knapsack.SolveDPTable(items, capacity)
		assert.ErrorIs(t, err, knapsack.ErrTableTooLarge, "table capacity=%d", capacity)

		_, err = knapsack.SolveDPRolling(items, capacity)
		assert.ErrorIs(t, err, knapsack.ErrTableTooLarge, "rolling capacity=%d", capacity)

		_, err = knapsack.SolveMemoized(items, capacity)
		assert.ErrorIs(t, err, knapsack.ErrTableTooLarge, "memo capacity=%d", capacity)

		_, err = knapsack.BuildTableWithLimit(items, capacity, 0)
		assert.ErrorIs(t, err, knapsack.ErrTableTooLarge, "unlimited capacity=%d", capacity)
	}
}

// TestTableSize_DefaultCap: a large but representable capacity is refused
// up front rather than allocated.
func TestTableSize_DefaultCap(t *testing.T) {
	items := []knapsack.Item{{Name: "a", Value: 1, Cost: 1}}
	const capacity = 100_000_000_000

	_, err := knapsack.BuildTable(items, capacity)
	assert.ErrorIs(t, err, knapsack.ErrTableTooLarge)
	_, err = knapsack.SolveDPRolling(items, capacity)
	assert.ErrorIs(t, err, knapsack.ErrTableTooLarge)
	_, _, err = knapsack.SolveMemoizedStats(items, capacity)
	assert.ErrorIs(t, err, knapsack.ErrTableTooLarge)

	// greedy and brute force do not allocate per capacity unit
	g, err := knapsack.SolveGreedy(items, capacity)
	require.NoError(t, err)
	assert.Equal(t, 1.0, g.Value)
	v, err := knapsack.SolveBruteForce(items, capacity)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestTableSize_OptionsCap: Solve and Compare honour Options.MaxTableCells.
// basic at capacity 10 is a 5×11 = 55 cell table.
func TestTableSize_OptionsCap(t *testing.T) {
	opts := knapsack.DefaultOptions()
	opts.MaxTableCells = 55

	for _, algo := range []knapsack.Algorithm{knapsack.Memoized, knapsack.Tabular} {
		opts.Algo = algo
		sol, err := knapsack.Solve(basicItems(), 10, opts)
		require.NoError(t, err, algo.String())
		assert.Equal(t, 29.0, sol.Value)

		_, err = knapsack.Solve(basicItems(), 11, opts)
		assert.ErrorIs(t, err, knapsack.ErrTableTooLarge, algo.String())
	}

	opts.Algo = knapsack.Tabular
	opts.Memory, opts.ReturnSelection = knapsack.TwoRows, false
	_, err := knapsack.Solve(basicItems(), 11, opts)
	assert.ErrorIs(t, err, knapsack.ErrTableTooLarge)

	opts.Algo = knapsack.BruteForce
	_, err = knapsack.Solve(basicItems(), 11, opts)
	assert.NoError(t, err, "brute force keeps no table")

	_, err = knapsack.Compare(basicItems(), 11, opts)
	assert.ErrorIs(t, err, knapsack.ErrTableTooLarge)

	opts.MaxTableCells = -1
	_, err = knapsack.Solve(basicItems(), 10, opts)
	assert.ErrorIs(t, err, knapsack.ErrTableTooLarge)
	_, err = knapsack.Compare(basicItems(), 10, opts)
	assert.ErrorIs(t, err, knapsack.ErrTableTooLarge)
}
