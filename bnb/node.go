package bnb

// node is one partial solution: the first level items in density order
// have been decided, and levels lists the included ones.
//
// Nodes are value types and never mutated after creation. The levels slice
// is shared between a parent and its exclude child; the include child gets
// a fresh copy via withLevel, so no append may ever touch a shared backing
// array.
type node struct {
	level  int     // how many density-order items are decided (0..n)
	value  int64   // total value of the included levels
	weight int64   // total weight of the included levels
	bound  float64 // optimistic value for any completion of this prefix
	levels []int   // included levels, ascending, 1-based
}

// withLevel returns the node's level set extended by lvl, always in a
// fresh allocation. A plain append could reuse the parent's backing array
// and corrupt exclude siblings sharing it.
func (nd node) withLevel(lvl int) []int {
	out := make([]int, len(nd.levels)+1)
	copy(out, nd.levels)
	out[len(nd.levels)] = lvl

	return out
}
