// Package knapsack is an exact solver toolkit for the 0/1 knapsack
// problem, built around branch-and-bound search with pluggable bounding
// and traversal strategies.
//
// 🚀 What is knapsack?
//
//	A small, deterministic toolkit that brings together:
//		• Exact search: branch-and-bound over include/exclude decisions
//		• Bounding: capacity relaxation (O(1)) & integrality relaxation (LP)
//		• Frontiers: depth-first stack or best-first priority queue
//		• Wire format: the classic two-line text instance/result layout
//		• Generation: reproducible random instances from a single seed
//
// ✨ Why choose knapsack?
//
//   - Provable optimality: every answer is a certified optimum, not a guess
//   - Deterministic: same input, same options, same output, byte for byte
//   - Pure Go core: the solver package imports nothing beyond the stdlib
//   - Tunable: swap bounds and traversal orders without touching the engine
//
// Under the hood, everything is organized under three subpackages and a CLI:
//
//	bnb/  : Item, Options, Solve, the search engine itself
//	ksio/ : ParseInstance / WriteResult, the text format boundary
//	gen/  : Random, seeded instance generation for tests and benchmarks
//	cmd/  : the knapsack binary (solve, gen)
//
// Quick example, four items and capacity 11:
//
//	4 11
//	8 4
//	10 5
//	15 8
//	4 3
//
//	solves to value 19 by taking the last two items (15+4, weight 8+3).
//
//	go get github.com/katalvlaran/knapsack/bnb
package knapsack
