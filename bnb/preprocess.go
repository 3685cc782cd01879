package bnb

import "sort"

// instance is the preprocessed, read-only form of a knapsack input shared
// by the engine and the bounding strategies.
//
// Items are re-ordered by value density (Value/Weight, descending; input
// order preserved on ties) because both bounds and the branching order
// rely on the densest-remaining-first property. Levels are 1-based
// positions in this order: level k decides items[k-1].
type instance struct {
	n        int
	capacity int64

	items   []Item  // density order; items[k].Index recovers the original position
	values  []int64 // values[k] == items[k].Value, flattened for the hot loops
	weights []int64 // weights[k] == items[k].Weight

	// prefix[k] is the total value of the first k items in density order,
	// with prefix[0] == 0. The capacity relaxation reads the value of an
	// undecided tail as prefix[n]-prefix[level] in O(1).
	prefix []int64
}

// newInstance copies and sorts the input, then precomputes the flat value,
// weight and prefix-sum views. The caller's slice is never mutated.
//
// Complexity: O(n log n) time, O(n) space.
func newInstance(items []Item, capacity int64) *instance {
	var (
		n   = len(items)
		ins = &instance{
			n:        n,
			capacity: capacity,
			items:    make([]Item, n),
			values:   make([]int64, n),
			weights:  make([]int64, n),
			prefix:   make([]int64, n+1),
		}
	)
	copy(ins.items, items)

	// Stable sort keeps equal densities in input order, which pins the
	// expansion order and therefore the reported selection.
	sort.SliceStable(ins.items, func(i, j int) bool {
		return float64(ins.items[i].Value)/float64(ins.items[i].Weight) >
			float64(ins.items[j].Value)/float64(ins.items[j].Weight)
	})

	var k int
	for k = 0; k < n; k++ {
		ins.values[k] = ins.items[k].Value
		ins.weights[k] = ins.items[k].Weight
		ins.prefix[k+1] = ins.prefix[k] + ins.values[k]
	}

	return ins
}
