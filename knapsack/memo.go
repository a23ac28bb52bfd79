package knapsack

// state is one subproblem of the recursive solvers: the index of the next
// item to decide and the capacity still available. Its optimal value depends
// on items[index:] and capacity only, never on the choices made before it,
// so a computed value is valid on every path reaching the same state.
type state struct {
	index    int
	capacity int
}

// MemoStats describes the cache of one memoized solve.
type MemoStats struct {
	// States is the number of distinct subproblems computed and cached.
	States int
}

// SolveMemoized returns the optimal value with the brute-force recurrence
// plus a per-call cache keyed by (index, remaining capacity).
//
// Each distinct state is computed once, which requires the capacity axis to
// be discrete: costs and capacity are integral units.
//
// Edge cases: empty catalog or zero capacity follow the brute-force base
// cases (0, plus any zero-cost items).
//
// The (N+1)·(C+1) state space is capped at DefaultMaxTableCells.
//
// Errors: ErrNegativeCapacity, ErrInvalidValue, ErrNegativeValue,
// ErrNegativeCost, ErrTableTooLarge.
//
// Complexity: O(N·C) time and space, O(N) stack.
func SolveMemoized(items []Item, capacity int) (float64, error) {
	v, _, err := SolveMemoizedStats(items, capacity)

	return v, err
}

// SolveMemoizedStats is SolveMemoized that also reports the cache size.
// States never exceeds (N+1)·(C+1).
func SolveMemoizedStats(items []Item, capacity int) (float64, MemoStats, error) {
	return solveMemoized(items, capacity, DefaultMaxTableCells)
}

func solveMemoized(items []Item, capacity, maxCells int) (float64, MemoStats, error) {
	if err := validateItems(items, capacity, false); err != nil {
		return 0, MemoStats{}, err
	}
	if err := checkTableSize(len(items), capacity, maxCells); err != nil {
		return 0, MemoStats{}, err
	}

	m := &memoSolver{
		items: items,
		free:  freeSuffix(items),
		cache: make(map[state]float64),
	}
	v := m.best(state{index: 0, capacity: capacity})

	return v, MemoStats{States: len(m.cache)}, nil
}

// memoSolver holds the read-only input and the call-local cache.
type memoSolver struct {
	items []Item
	free  []float64
	cache map[state]float64
}

// best mirrors bruteForce: base cases first, then cache lookup, two
// branches, cache store.
func (m *memoSolver) best(s state) float64 {
	if s.index >= len(m.items) {
		return 0
	}
	if s.capacity <= 0 {
		return m.free[s.index]
	}
	if v, ok := m.cache[s]; ok {
		return v
	}

	it := m.items[s.index]
	v := m.best(state{index: s.index + 1, capacity: s.capacity})
	if it.Cost <= s.capacity {
		take := it.Value + m.best(state{index: s.index + 1, capacity: s.capacity - it.Cost})
		v = max(v, take)
	}
	m.cache[s] = v

	return v
}
