package knapsack_test

import (
	"testing"

	"github.com/jota0802/gs-dynamic/knapsack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveBruteForce_Fixtures(t *testing.T) {
	cases := []struct {
		name     string
		items    []knapsack.Item
		capacity int
		want     float64
	}{
		{"basic", basicItems(), 10, 29},
		{"basic-cap7", basicItems(), 7, 22},
		{"trap", greedyTrapItems(), 50, 220},
		{"six", sixItems(), 20, 58},
		{"equal-density", equalDensityItems(), 20, 100},
		{"ramp10", rampItems(10), 30, 150},
		{"single-fits", []knapsack.Item{{Name: "P1", Value: 15, Cost: 5}}, 10, 15},
		{"single-too-big", []knapsack.Item{{Name: "P1", Value: 15, Cost: 15}}, 10, 0},
		{"empty", nil, 10, 0},
		{"zero-capacity", basicItems(), 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := knapsack.SolveBruteForce(tc.items, tc.capacity)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestBruteForceFrom_Suffix verifies that a start index restricts the search
// to the item suffix.
func TestBruteForceFrom_Suffix(t *testing.T) {
	items := basicItems()

	// Only C and D remain: best under 10 is C+D = 11.
	got, err := knapsack.BruteForceFrom(items, 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 11.0, got)

	// start == N is the empty suffix.
	got, err = knapsack.BruteForceFrom(items, 10, len(items))
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = knapsack.BruteForceFrom(items, 10, len(items)+1)
	assert.ErrorIs(t, err, knapsack.ErrStartOutOfRange)
	_, err = knapsack.BruteForceFrom(items, 10, -1)
	assert.ErrorIs(t, err, knapsack.ErrStartOutOfRange)
}

// TestSolveBruteForce_ZeroCostItems checks that free items are always taken,
// including when the capacity is already exhausted.
func TestSolveBruteForce_ZeroCostItems(t *testing.T) {
	items := []knapsack.Item{
		{Name: "A", Value: 10, Cost: 5},
		{Name: "free", Value: 3, Cost: 0},
	}
	got, err := knapsack.SolveBruteForce(items, 5)
	require.NoError(t, err)
	assert.Equal(t, 13.0, got)

	got, err = knapsack.SolveBruteForce(items, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, got)
}

func TestSolveBruteForce_Errors(t *testing.T) {
	_, err := knapsack.SolveBruteForce(basicItems(), -5)
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)

	_, err = knapsack.SolveBruteForce([]knapsack.Item{{Name: "x", Value: -1, Cost: 1}}, 5)
	assert.ErrorIs(t, err, knapsack.ErrNegativeValue)
}
