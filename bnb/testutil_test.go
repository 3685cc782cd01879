// Package bnb_test provides lightweight helpers shared across *_test.go
// files in this package: deterministic instance builders and a brute-force
// oracle small enough to certify exact optimality.
package bnb_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/knapsack/bnb"
)

const (
	// seedDet is the deterministic seed for all randomized test instances.
	seedDet = int64(42)

	// oracleMaxItems caps brute-force verification (2^n subsets).
	oracleMaxItems = 15
)

// fourCombos enumerates every bound/traversal pairing exactly once.
func fourCombos() []bnb.Options {
	var (
		combos     []bnb.Options
		bounds     = []bnb.BoundAlgo{bnb.IntegralityRelaxation, bnb.CapacityRelaxation}
		traversals = []bnb.Traversal{bnb.DepthFirst, bnb.BestFirst}
		ba         bnb.BoundAlgo
		tr         bnb.Traversal
	)
	for _, ba = range bounds {
		for _, tr = range traversals {
			opts := bnb.DefaultOptions()
			opts.BoundAlgo = ba
			opts.Traversal = tr
			combos = append(combos, opts)
		}
	}

	return combos
}

// comboName renders a short label for subtest names.
func comboName(opts bnb.Options) string {
	var name string
	if opts.BoundAlgo == bnb.IntegralityRelaxation {
		name = "integrality"
	} else {
		name = "capacity"
	}
	if opts.Traversal == bnb.DepthFirst {
		name += "/dfs"
	} else {
		name += "/best"
	}

	return name
}

// randomItems builds n items with values in [0,maxV] and weights in
// [1,maxW] from the given stream; capacity is half the total weight, which
// keeps instances neither trivially empty nor trivially full.
func randomItems(rng *rand.Rand, n int, maxV, maxW int64) ([]bnb.Item, int64) {
	var (
		items = make([]bnb.Item, n)
		total int64
		i     int
	)
	for i = 0; i < n; i++ {
		items[i] = bnb.Item{
			Index:  i,
			Value:  rng.Int63n(maxV + 1),
			Weight: 1 + rng.Int63n(maxW),
		}
		total += items[i].Weight
	}

	return items, total / 2
}

// bruteForce enumerates all 2^n subsets and returns the exact optimum.
// Only meaningful for n <= oracleMaxItems.
func bruteForce(t *testing.T, items []bnb.Item, capacity int64) int64 {
	t.Helper()
	if len(items) > oracleMaxItems {
		t.Fatalf("oracle limited to %d items, got %d", oracleMaxItems, len(items))
	}
	var (
		n    = len(items)
		best int64
		mask int
		i    int
	)
	for mask = 0; mask < 1<<n; mask++ {
		var v, w int64
		for i = 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				v += items[i].Value
				w += items[i].Weight
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}

// mustErrIs asserts err matches the target sentinel via errors.Is.
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustFeasible asserts the selection vector is well-formed 0/1, respects
// the capacity, and reproduces the reported value.
func mustFeasible(t *testing.T, items []bnb.Item, capacity int64, res bnb.Result) {
	t.Helper()
	if len(res.Taken) != len(items) {
		t.Fatalf("selection length %d, want %d", len(res.Taken), len(items))
	}
	var (
		v, w int64
		it   bnb.Item
	)
	for _, it = range items {
		switch res.Taken[it.Index] {
		case 0:
			// skipped
		case 1:
			v += it.Value
			w += it.Weight
		default:
			t.Fatalf("selection entry %d is %d, want 0 or 1", it.Index, res.Taken[it.Index])
		}
	}
	if w > capacity {
		t.Fatalf("selection weight %d exceeds capacity %d", w, capacity)
	}
	if v != res.Value {
		t.Fatalf("selection value %d disagrees with reported value %d", v, res.Value)
	}
}

// ks4Items is the canonical 4-item teaching instance: the unique optimum
// is 19 via the last two items (15+4 at weight 8+3 <= 11).
func ks4Items() ([]bnb.Item, int64) {
	items := []bnb.Item{
		{Index: 0, Value: 8, Weight: 4},
		{Index: 1, Value: 10, Weight: 5},
		{Index: 2, Value: 15, Weight: 8},
		{Index: 3, Value: 4, Weight: 3},
	}

	return items, 11
}
