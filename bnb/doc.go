// Package bnb provides an exact 0/1 knapsack solver built on
// branch-and-bound search.
//
// Given items with non-negative values and strictly positive weights plus
// a knapsack capacity, Solve returns the maximum total value achievable
// without exceeding the capacity, together with the 0/1 selection vector
// over the original item order.
//
// The search enumerates include/exclude decisions over items pre-sorted by
// value density (value/weight, descending). Each partial solution carries
// an optimistic bound on the best value any of its completions can reach;
// subtrees whose bound cannot beat the best feasible solution found so far
// are pruned. Two admissible bounds are available:
//
//   - CapacityRelaxation: pretend the knapsack is unbounded and count every
//     undecided item in full. O(1) per node via prefix sums; cheap but loose.
//   - IntegralityRelaxation: the linear-programming relaxation; fill the
//     remaining capacity greedily by density and take a fractional share of
//     the first item that does not fit. O(n) per node; tight.
//
// Two frontier policies order the exploration:
//
//   - DepthFirst: LIFO stack, minimal memory, finds incumbents fast.
//   - BestFirst: max-heap on the bound, expands the most promising subtree
//     first at the cost of a larger frontier.
//
// Every bound/traversal combination returns the same optimal value, and
// runs are deterministic for a given input and Options.
//
// Use this package when provable optimality is required on small-to-medium
// instances; the worst case remains exponential in the number of items.
package bnb
