// Package gsdynamic is a small toolkit for project-portfolio selection:
// pick the subset of projects of maximum total value whose total cost fits
// a budget (the 0/1 knapsack problem).
//
// 🚀 What is inside?
//
//	Four strategies over the same item catalog:
//		• Greedy      – value/cost ranking, one pass, fast but inexact
//		• Brute force – full include/exclude recursion, exact, O(2^N)
//		• Memoized    – the same recursion with an (index, capacity) cache, O(N·C)
//		• DP table    – bottom-up table with reconstruction of the chosen items
//
// ✨ Why use it?
//
//   - Exact methods are cross-checked: knapsack.Compare runs all of them
//     and reports whether they agree and how far greedy fell short
//   - Pure functions: no shared state, safe to call from many goroutines
//   - Datasets as YAML/JSON files, plus built-in reference portfolios
//
// Layout:
//
//	knapsack/          - Item, Catalog, Solution, the four solvers, Solve, Compare
//	catalog/           - YAML/JSON loading and built-in datasets
//	internal/config/   - layered configuration (defaults, file, env, flags)
//	internal/logging/  - logr logger backed by zap
//	internal/report/   - text and JSON rendering
//	internal/cli/      - the cobra command tree
//	cmd/portfolio/     - the CLI binary
//	examples/          - runnable planning scenarios
//
// Quick example:
//
//	items := []knapsack.Item{{Name: "A", Value: 12, Cost: 4}, {Name: "B", Value: 10, Cost: 3}}
//	sol, _ := knapsack.SolveDPTable(items, 5)
//	// sol.Value == 12, sol.Names() == ["A"]
//
//	go install github.com/jota0802/gs-dynamic/cmd/portfolio@latest
package gsdynamic
