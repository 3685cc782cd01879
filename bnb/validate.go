// Package bnb - validation helpers for Solve inputs.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) worst case; one small allocation for the index uniqueness scan.
package bnb

import "fmt"

// validateOptions rejects enum values this package does not implement.
// Runs before any instance work so misconfiguration fails fast.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	switch opts.BoundAlgo {
	case IntegralityRelaxation, CapacityRelaxation:
		// known strategies
	default:
		return fmt.Errorf("%w: %d", ErrUnknownBound, opts.BoundAlgo)
	}

	switch opts.Traversal {
	case DepthFirst, BestFirst:
		// known policies
	default:
		return fmt.Errorf("%w: %d", ErrUnknownTraversal, opts.Traversal)
	}

	return nil
}

// validateInstance enforces the item and capacity contracts: non-negative
// capacity, non-negative values, strictly positive weights, and indices
// forming a permutation of [0, n).
//
// Complexity: O(n) time, O(n) extra space for the uniqueness scan.
func validateInstance(items []Item, capacity int64) error {
	if capacity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, capacity)
	}

	var (
		n    = len(items)
		seen = make([]bool, n) // seen[k] marks Index k as already claimed
		i    int
		it   Item
	)
	for i, it = range items {
		if it.Value < 0 {
			return fmt.Errorf("%w: item %d has value %d", ErrNegativeValue, i, it.Value)
		}
		if it.Weight <= 0 {
			return fmt.Errorf("%w: item %d has weight %d", ErrNonPositiveWeight, i, it.Weight)
		}
		if it.Index < 0 || it.Index >= n {
			return fmt.Errorf("%w: item %d has index %d", ErrItemIndex, i, it.Index)
		}
		if seen[it.Index] {
			return fmt.Errorf("%w: index %d appears twice", ErrItemIndex, it.Index)
		}
		seen[it.Index] = true
	}

	return nil
}
