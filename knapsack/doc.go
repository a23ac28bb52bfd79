// Package knapsack solves the 0/1 knapsack (project-portfolio selection)
// problem: pick a subset of items maximizing total value without the total
// cost exceeding a capacity.
//
// 🚀 Strategies
//
//	SolveGreedy     - density heuristic, single pass.  O(N log N). Inexact.
//	SolveBruteForce - include/exclude recursion.       O(2^N).    Exact.
//	SolveMemoized   - recursion + (index, capacity) cache. O(N·C). Exact.
//	SolveDPTable    - bottom-up (N+1)×(C+1) table with
//	                  backtracking of the chosen items. O(N·C).  Exact.
//	SolveDPRolling  - same table kept as two rows, value only. O(C) memory.
//
// All exact strategies agree on the optimal value. The greedy value never
// exceeds it and matches it only incidentally.
//
// ✨ Why the memo and the table are valid
//
//	The optimum of a subproblem (index, remaining capacity) depends only on
//	the items still to decide and on the capacity left, never on which items
//	were chosen before. Subproblems overlap and are history-independent, so
//	each can be solved once and reused.
//
// ⚙️ Usage:
//
//	items := []knapsack.Item{
//	  {Name: "A", Value: 12, Cost: 4},
//	  {Name: "B", Value: 10, Cost: 3},
//	}
//	sol, err := knapsack.SolveDPTable(items, 10)
//	// sol.Value, sol.Names(), sol.CapacityUsed
//
//	opts := knapsack.DefaultOptions()
//	opts.Algo = knapsack.Memoized
//	sol, err = knapsack.Solve(items, 10, opts)
//
//	cmp, err := knapsack.Compare(items, 10, knapsack.DefaultOptions())
//	// cmp.Agree(), cmp.GreedyGap()
//
// Inputs:
//
//   - Value finite and ≥ 0; Cost ≥ 0 in integral units; capacity ≥ 0.
//   - Zero-cost items are accepted by the exact solvers (always includable)
//     and rejected by the greedy heuristic (ErrZeroCost).
//   - Empty catalogs and zero capacity are valid and yield value 0.
//
// Concurrency:
//
//	Every solve is a pure function of its inputs. Caches and tables are
//	local to one call; the items slice is only read. Any number of solves
//	may run in parallel on the same catalog.
package knapsack
