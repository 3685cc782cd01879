// Package bnb_test validates the exact solver end-to-end: canonical
// scenarios, boundary instances, strict input sentinels, cancellation,
// and determinism across repeated runs.
package bnb_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knapsack/bnb"
)

// TestSolve_CanonicalInstance solves the 4-item teaching instance under
// every bound/traversal combination: same optimum, same unique selection.
func TestSolve_CanonicalInstance(t *testing.T) {
	items, capacity := ks4Items()

	for _, opts := range fourCombos() {
		t.Run(comboName(opts), func(t *testing.T) {
			res, err := bnb.Solve(items, capacity, opts)
			require.NoError(t, err)
			assert.Equal(t, int64(19), res.Value, "unique optimum is 15+4")
			assert.Equal(t, []int{0, 0, 1, 1}, res.Taken, "only items 2 and 3 reach 19")
			assert.GreaterOrEqual(t, res.Explored, 1, "the root must be expanded")
			assert.GreaterOrEqual(t, res.Pruned, 1, "the optimal leaf itself is gated out")
			mustFeasible(t, items, capacity, res)
		})
	}
}

// TestSolve_ShuffledIndexOrder checks that the selection vector follows
// Item.Index, not slice position, when items arrive out of order.
func TestSolve_ShuffledIndexOrder(t *testing.T) {
	items := []bnb.Item{
		{Index: 2, Value: 15, Weight: 8},
		{Index: 0, Value: 8, Weight: 4},
		{Index: 3, Value: 4, Weight: 3},
		{Index: 1, Value: 10, Weight: 5},
	}

	res, err := bnb.Solve(items, 11, bnb.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(19), res.Value)
	assert.Equal(t, []int{0, 0, 1, 1}, res.Taken)
}

// TestSolve_InputNotMutated verifies Solve never reorders the caller's slice.
func TestSolve_InputNotMutated(t *testing.T) {
	items, capacity := ks4Items()
	original := make([]bnb.Item, len(items))
	copy(original, items)

	_, err := bnb.Solve(items, capacity, bnb.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, original, items, "caller's slice must stay untouched")
}

// TestSolve_EmptyInstance: zero items solve to value 0 with an empty vector.
func TestSolve_EmptyInstance(t *testing.T) {
	for _, opts := range fourCombos() {
		t.Run(comboName(opts), func(t *testing.T) {
			res, err := bnb.Solve(nil, 10, opts)
			require.NoError(t, err)
			assert.Equal(t, int64(0), res.Value)
			assert.Empty(t, res.Taken)
			assert.Zero(t, res.Explored, "the root is a leaf, never expanded")
		})
	}
}

// TestSolve_ZeroCapacity: nothing fits, so the optimum is the empty set.
func TestSolve_ZeroCapacity(t *testing.T) {
	items, _ := ks4Items()

	for _, opts := range fourCombos() {
		t.Run(comboName(opts), func(t *testing.T) {
			res, err := bnb.Solve(items, 0, opts)
			require.NoError(t, err)
			assert.Equal(t, int64(0), res.Value)
			assert.Equal(t, []int{0, 0, 0, 0}, res.Taken)
		})
	}
}

// TestSolve_SingleHeavyItem: an item heavier than the capacity is legal
// input and simply cannot be taken.
func TestSolve_SingleHeavyItem(t *testing.T) {
	items := []bnb.Item{{Index: 0, Value: 5, Weight: 10}}

	res, err := bnb.Solve(items, 5, bnb.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Value)
	assert.Equal(t, []int{0}, res.Taken)
}

// TestSolve_AllZeroValues: the empty selection is a valid optimum.
func TestSolve_AllZeroValues(t *testing.T) {
	items := []bnb.Item{
		{Index: 0, Value: 0, Weight: 2},
		{Index: 1, Value: 0, Weight: 3},
	}

	res, err := bnb.Solve(items, 4, bnb.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.Value)
	assert.Equal(t, []int{0, 0}, res.Taken)
}

// TestSolve_ExactFit: a selection that consumes the capacity exactly is
// feasible (the budget is inclusive).
func TestSolve_ExactFit(t *testing.T) {
	items := []bnb.Item{
		{Index: 0, Value: 7, Weight: 6},
		{Index: 1, Value: 5, Weight: 4},
	}

	res, err := bnb.Solve(items, 10, bnb.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(12), res.Value)
	assert.Equal(t, []int{1, 1}, res.Taken)
}

// TestSolve_ValidationSentinels exercises each input contract violation.
func TestSolve_ValidationSentinels(t *testing.T) {
	opts := bnb.DefaultOptions()

	// Negative capacity.
	_, err := bnb.Solve([]bnb.Item{{Index: 0, Value: 1, Weight: 1}}, -1, opts)
	mustErrIs(t, err, bnb.ErrNegativeCapacity)

	// Negative value.
	_, err = bnb.Solve([]bnb.Item{{Index: 0, Value: -1, Weight: 1}}, 5, opts)
	mustErrIs(t, err, bnb.ErrNegativeValue)

	// Zero weight.
	_, err = bnb.Solve([]bnb.Item{{Index: 0, Value: 1, Weight: 0}}, 5, opts)
	mustErrIs(t, err, bnb.ErrNonPositiveWeight)

	// Negative weight.
	_, err = bnb.Solve([]bnb.Item{{Index: 0, Value: 1, Weight: -3}}, 5, opts)
	mustErrIs(t, err, bnb.ErrNonPositiveWeight)

	// Index out of range.
	_, err = bnb.Solve([]bnb.Item{{Index: 3, Value: 1, Weight: 1}}, 5, opts)
	mustErrIs(t, err, bnb.ErrItemIndex)

	// Duplicate index.
	_, err = bnb.Solve([]bnb.Item{
		{Index: 0, Value: 1, Weight: 1},
		{Index: 0, Value: 2, Weight: 1},
	}, 5, opts)
	mustErrIs(t, err, bnb.ErrItemIndex)

	// Unknown bounding strategy.
	bad := bnb.DefaultOptions()
	bad.BoundAlgo = bnb.BoundAlgo(99)
	_, err = bnb.Solve([]bnb.Item{{Index: 0, Value: 1, Weight: 1}}, 5, bad)
	mustErrIs(t, err, bnb.ErrUnknownBound)

	// Unknown traversal policy.
	bad = bnb.DefaultOptions()
	bad.Traversal = bnb.Traversal(99)
	_, err = bnb.Solve([]bnb.Item{{Index: 0, Value: 1, Weight: 1}}, 5, bad)
	mustErrIs(t, err, bnb.ErrUnknownTraversal)
}

// TestSolve_CancelledContext: a pre-cancelled context aborts the search
// and yields no result.
func TestSolve_CancelledContext(t *testing.T) {
	items, capacity := ks4Items()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	opts := bnb.DefaultOptions()
	opts.Ctx = ctx

	res, err := bnb.Solve(items, capacity, opts)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, bnb.Result{}, res, "an aborted run proves nothing")
}

// TestSolve_ZeroOptions: the zero value of Options is fully usable
// (integrality bound, depth-first frontier, no cancellation).
func TestSolve_ZeroOptions(t *testing.T) {
	items, capacity := ks4Items()

	res, err := bnb.Solve(items, capacity, bnb.Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(19), res.Value)
}

// TestSolve_Determinism: identical runs return identical results,
// including the node counters.
func TestSolve_Determinism(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	items, capacity := randomItems(rng, 14, 80, 40)

	for _, opts := range fourCombos() {
		t.Run(comboName(opts), func(t *testing.T) {
			first, err := bnb.Solve(items, capacity, opts)
			require.NoError(t, err)

			var i int
			for i = 0; i < 3; i++ {
				again, errAgain := bnb.Solve(items, capacity, opts)
				require.NoError(t, errAgain)
				assert.Equal(t, first, again)
			}
		})
	}
}
