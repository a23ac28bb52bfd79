package knapsack

import "sort"

// SolveGreedy selects items by value/cost density in a single pass.
//
// Algorithm:
//  1. Compute density = Value/Cost for every item.
//  2. Stable-sort indices by density, descending. Equal densities keep
//     catalog order, so of several equal-value answers the one favouring
//     earlier items is returned.
//  3. Scan once; accept an item iff Cost ≤ capacity-used (never overflows,
//     0 ≤ used ≤ capacity). A skipped item is never reconsidered.
//
// The result is always feasible but NOT necessarily optimal (Exact=false).
// Selected items are reported in acceptance (density) order.
//
// Errors: ErrNegativeCapacity, ErrInvalidValue, ErrNegativeValue,
// ErrNegativeCost, ErrZeroCost (density undefined for a free item).
//
// Complexity: O(N log N) time (sort), O(N) space.
func SolveGreedy(items []Item, capacity int) (Solution, error) {
	if err := validateItems(items, capacity, true); err != nil {
		return Solution{}, err
	}

	order := make([]int, len(items))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return items[order[a]].Density() > items[order[b]].Density()
	})

	sol := Solution{Algo: Greedy, Items: make([]Item, 0, len(items))}
	var it Item
	for _, idx := range order {
		it = items[idx]
		if it.Cost > capacity-sol.CapacityUsed {
			continue
		}
		sol.Items = append(sol.Items, it)
		sol.Value += it.Value
		sol.CapacityUsed += it.Cost
	}

	return sol, nil
}
