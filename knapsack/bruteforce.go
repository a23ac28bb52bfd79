package knapsack

// SolveBruteForce returns the optimal value by exhaustive include/exclude
// recursion over every item. It is BruteForceFrom(items, capacity, 0).
func SolveBruteForce(items []Item, capacity int) (float64, error) {
	return BruteForceFrom(items, capacity, 0)
}

// BruteForceFrom returns the best value achievable from items[start:] under
// capacity.
//
// Recurrence:
//
//	best(i, c) = 0                                  if i ≥ N
//	best(i, c) = Σ value of zero-cost items[i:]     if c = 0
//	best(i, c) = max( best(i+1, c),                 exclude item i
//	                  value[i] + best(i+1, c-cost[i]) if cost[i] ≤ c )
//
// With no zero-cost items the c = 0 case is the plain 0 base case.
// Exactly two branches per call: the exact optimum over all 2^N combinations.
// No selection is reconstructed.
//
// The recursion depth equals N - start. Callers wanting a time bound cap N
// before calling (see Options.MaxBruteForceItems).
//
// Errors: ErrNegativeCapacity, ErrInvalidValue, ErrNegativeValue,
// ErrNegativeCost, ErrStartOutOfRange (start ∉ [0..N]).
//
// Complexity: O(2^N) time, O(N) stack.
func BruteForceFrom(items []Item, capacity int, start int) (float64, error) {
	if err := validateItems(items, capacity, false); err != nil {
		return 0, err
	}
	if start < 0 || start > len(items) {
		return 0, ErrStartOutOfRange
	}

	return bruteForce(items, freeSuffix(items), start, capacity), nil
}

// bruteForce is the unguarded recursion behind BruteForceFrom.
func bruteForce(items []Item, free []float64, i, c int) float64 {
	if i >= len(items) {
		return 0
	}
	if c <= 0 {
		return free[i]
	}

	skip := bruteForce(items, free, i+1, c)
	if items[i].Cost > c {
		return skip
	}
	take := items[i].Value + bruteForce(items, free, i+1, c-items[i].Cost)

	return max(skip, take)
}
