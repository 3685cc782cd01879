package bnb

import "container/heap"

// frontier holds created-but-unexpanded nodes. Implementations define the
// expansion order; the engine treats the policy as opaque.
type frontier interface {
	push(nd node)
	pop() node
	size() int
}

// lifoFrontier is a plain stack: the engine descends into the most recent
// child first, reaching feasible leaves (and hence useful incumbents)
// after n expansions.
type lifoFrontier struct {
	stack []node
}

func newLifoFrontier() *lifoFrontier {
	return &lifoFrontier{stack: make([]node, 0, 64)}
}

func (f *lifoFrontier) push(nd node) { f.stack = append(f.stack, nd) }

func (f *lifoFrontier) pop() node {
	var last = len(f.stack) - 1
	nd := f.stack[last]
	f.stack[last] = node{} // drop the levels reference so the GC can reclaim it
	f.stack = f.stack[:last]

	return nd
}

func (f *lifoFrontier) size() int { return len(f.stack) }

// bestFrontier expands the node with the highest bound first. Among equal
// bounds the earliest-enqueued node wins, keeping runs fully reproducible.
type bestFrontier struct {
	pq  boundPQ
	seq uint64 // monotonically increasing enqueue stamp for the FIFO tiebreak
}

func newBestFrontier() *bestFrontier {
	f := &bestFrontier{pq: make(boundPQ, 0, 64)}
	heap.Init(&f.pq)

	return f
}

func (f *bestFrontier) push(nd node) {
	f.seq++
	heap.Push(&f.pq, &frontierEntry{nd: nd, seq: f.seq})
}

func (f *bestFrontier) pop() node {
	entry := heap.Pop(&f.pq).(*frontierEntry)

	return entry.nd
}

func (f *bestFrontier) size() int { return len(f.pq) }

// frontierEntry pairs a node with its enqueue stamp for stable ordering.
type frontierEntry struct {
	nd  node
	seq uint64
}

// boundPQ is a max-heap of *frontierEntry ordered by bound descending,
// then by enqueue order ascending.
type boundPQ []*frontierEntry

var _ heap.Interface = (*boundPQ)(nil)

// Len returns the number of entries in the heap.
func (pq boundPQ) Len() int { return len(pq) }

// Less defines the comparison: larger bound wins, earlier stamp breaks ties.
func (pq boundPQ) Less(i, j int) bool {
	if pq[i].nd.bound == pq[j].nd.bound {
		return pq[i].seq < pq[j].seq
	}

	return pq[i].nd.bound > pq[j].nd.bound
}

// Swap swaps two entries in the heap.
func (pq boundPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new entry; called by heap.Push, x must be *frontierEntry.
func (pq *boundPQ) Push(x interface{}) { *pq = append(*pq, x.(*frontierEntry)) }

// Pop removes and returns the highest-priority entry; called by heap.Pop.
func (pq *boundPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	entry := old[n-1]
	old[n-1] = nil // avoid retaining the popped entry
	*pq = old[:n-1]

	return entry
}
