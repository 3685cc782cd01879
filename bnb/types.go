package bnb

import (
	"context"
	"errors"
)

// Sentinel errors returned by Solve and its validation stages.
var (
	// ErrNegativeValue indicates an item with Value < 0. Values must be
	// non-negative for the density order and the bounds to be meaningful.
	ErrNegativeValue = errors.New("bnb: item value is negative")

	// ErrNonPositiveWeight indicates an item with Weight <= 0. Zero-weight
	// items would make the density order undefined.
	ErrNonPositiveWeight = errors.New("bnb: item weight is not positive")

	// ErrNegativeCapacity indicates a negative knapsack capacity.
	ErrNegativeCapacity = errors.New("bnb: capacity is negative")

	// ErrItemIndex indicates an Item.Index outside [0, len(items)) or one
	// that appears more than once. Indices must form a permutation so the
	// selection vector can be reported over the original order.
	ErrItemIndex = errors.New("bnb: item index out of range or duplicated")

	// ErrUnknownBound indicates an Options.BoundAlgo value this package
	// does not implement.
	ErrUnknownBound = errors.New("bnb: unknown bounding strategy")

	// ErrUnknownTraversal indicates an Options.Traversal value this package
	// does not implement.
	ErrUnknownTraversal = errors.New("bnb: unknown traversal policy")

	// ErrResultMismatch indicates that the final selection vector does not
	// reproduce the incumbent value. It signals an internal inconsistency
	// and should never be observed.
	ErrResultMismatch = errors.New("bnb: selection does not reproduce the optimal value")
)

// Item is one knapsack candidate.
//
// Index is the item's position in the caller's original order; Solve
// reports the selection vector over these positions regardless of the
// density order used internally. Indices must form a permutation of
// [0, len(items)).
type Item struct {
	Index  int   // position in the original input order
	Value  int64 // profit when taken; must be >= 0
	Weight int64 // capacity consumed when taken; must be > 0
}

// BoundAlgo selects the bounding strategy used for pruning.
//
// Both strategies are admissible: they never under-estimate the best
// completion of a partial solution, so either yields the exact optimum.
// They differ only in tightness and per-node cost.
type BoundAlgo int

const (
	// IntegralityRelaxation bounds a node by the LP relaxation: undecided
	// items fill the remaining capacity greedily in density order and the
	// first misfit contributes a fractional share. O(n) per node; tight.
	IntegralityRelaxation BoundAlgo = iota

	// CapacityRelaxation bounds a node by dropping the capacity constraint
	// entirely, counting every undecided item in full. O(1) per node via
	// prefix sums; loose.
	CapacityRelaxation
)

// String provides a readable identifier for logs and errors.
func (b BoundAlgo) String() string {
	switch b {
	case IntegralityRelaxation:
		return "integrality"
	case CapacityRelaxation:
		return "capacity"
	default:
		return "unknown"
	}
}

// Traversal selects the frontier policy that orders node expansion.
// The policy affects memory use and the number of expanded nodes, never
// the returned optimum.
type Traversal int

const (
	// DepthFirst expands the most recently created node first (LIFO).
	DepthFirst Traversal = iota

	// BestFirst expands the node with the highest bound first (max-heap;
	// FIFO among equal bounds).
	BestFirst
)

// String provides a readable identifier for logs and errors.
func (tr Traversal) String() string {
	switch tr {
	case DepthFirst:
		return "dfs"
	case BestFirst:
		return "best"
	default:
		return "unknown"
	}
}

// Options configures a single Solve run.
type Options struct {
	// BoundAlgo is the pruning bound. Default: IntegralityRelaxation.
	BoundAlgo BoundAlgo

	// Traversal is the frontier policy. Default: DepthFirst.
	Traversal Traversal

	// Ctx cancels the search between node expansions. A nil context is
	// treated as context.Background(). On cancellation Solve returns the
	// context error and no result: a partial search proves nothing.
	Ctx context.Context
}

// DefaultOptions returns the recommended configuration: the tight
// integrality bound explored depth-first, without cancellation.
func DefaultOptions() Options {
	return Options{
		BoundAlgo: IntegralityRelaxation,
		Traversal: DepthFirst,
		Ctx:       context.Background(),
	}
}

// Result is the outcome of an exact solve.
type Result struct {
	// Value is the optimal total value.
	Value int64

	// Taken is the 0/1 selection vector: Taken[i] == 1 exactly when the
	// item with Index i belongs to the reported optimal selection.
	Taken []int

	// Explored counts nodes expanded into children.
	Explored int

	// Pruned counts nodes discarded because their bound could not beat
	// the incumbent, at enqueue or at dequeue time.
	Pruned int
}
