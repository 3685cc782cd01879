// Package bnb - the branch-and-bound engine.
//
// Solve enumerates include/exclude decisions over density-ordered items.
// Rationale (succinct):
//  1. Preprocessing sorts items by value density and precomputes value
//     prefix sums; both bounds and the branching order rely on them.
//  2. Every created child updates the incumbent immediately, before any
//     frontier bookkeeping, so the best feasible value is monotone and
//     already visible to the very next enqueue gate.
//  3. A child enters the frontier only when its bound strictly beats the
//     incumbent, and is re-checked at dequeue time: the incumbent may have
//     improved while the node waited.
//  4. The include child is constructed only when the item still fits and
//     receives a private copy of the inclusion set; the exclude child
//     shares the parent's set, keeping allocations proportional to actual
//     inclusions.
//  5. After the frontier drains, included levels map back to original item
//     positions and the value is recomputed from the selection as a
//     consistency check.
//
// Complexity:
//   - Worst case exponential in n (exact search); pruning sets the
//     practical speed.
//   - Per node: O(1) state updates plus the bound cost (O(1) capacity
//     relaxation, O(n) integrality relaxation).
//   - Memory: frontier size is O(n) on the active spine under DepthFirst;
//     BestFirst may retain a large frontier on adversarial instances.

package bnb

import (
	"context"
	"fmt"
)

// engine holds all per-run search state and policies.
// A dedicated struct (rather than closures over Solve locals) keeps
// dependencies explicit and the hot-path state predictable.
type engine struct {
	// Configuration / policy
	ins   *instance
	bnd   bounder
	front frontier
	ctx   context.Context

	// Incumbent: best feasible solution seen so far
	best       int64
	bestLevels []int

	// Diagnostics
	explored int // nodes expanded into children
	pruned   int // nodes rejected by the bound, at enqueue or dequeue
}

// Solve returns the exact optimum of a 0/1 knapsack instance.
//
// items must carry non-negative values, strictly positive weights, and
// Index fields forming a permutation of [0, len(items)); capacity must be
// non-negative. The returned selection vector is indexed by Item.Index.
//
// Errors:
//   - validation sentinels from types.go for malformed inputs or options,
//   - the context error when opts.Ctx is cancelled mid-search,
//   - ErrResultMismatch on an internal inconsistency (never expected).
func Solve(items []Item, capacity int64, opts Options) (Result, error) {
	// Stage 1: validation (options first; misconfiguration is the cheaper check).
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	if err := validateInstance(items, capacity); err != nil {
		return Result{}, err
	}

	// Stage 2: preprocessing into density order with prefix sums.
	ins := newInstance(items, capacity)

	// Stage 3: engine assembly per options.
	var e engine
	e.ins = ins
	switch opts.BoundAlgo {
	case CapacityRelaxation:
		e.bnd = capacityRelax{}
	default:
		e.bnd = integralityRelax{}
	}
	switch opts.Traversal {
	case BestFirst:
		e.front = newBestFrontier()
	default:
		e.front = newLifoFrontier()
	}
	e.ctx = opts.Ctx
	if e.ctx == nil {
		e.ctx = context.Background()
	}

	// Stage 4: seed the frontier with the empty prefix.
	root := node{bound: e.bnd.estimate(ins, 0, 0, 0)}
	e.front.push(root)

	// Stage 5: drain the frontier.
	if err := e.run(); err != nil {
		return Result{}, err
	}

	// Stage 6: map levels back to original positions and cross-check.
	return e.finalize(items)
}

// run expands frontier nodes until none remain or the context is cancelled.
func (e *engine) run() error {
	for e.front.size() > 0 {
		// Cancellation check once per removal.
		select {
		case <-e.ctx.Done():
			return e.ctx.Err()
		default:
		}

		nd := e.front.pop()

		// Leaves decided every item; their value already reached the
		// incumbent when they were created.
		if nd.level == e.ins.n {
			continue
		}

		// Re-check against the incumbent: it may have improved while this
		// node sat in the frontier.
		if nd.bound <= float64(e.best) {
			e.pruned++
			continue
		}

		e.explored++
		e.branch(nd)
	}

	return nil
}

// branch creates the children of nd for the next undecided item. The
// exclude child is offered first so a LIFO frontier expands the include
// child first and reaches dense feasible prefixes early.
func (e *engine) branch(nd node) {
	var (
		lvl = nd.level + 1            // 1-based level of the item under decision
		v   = e.ins.values[nd.level]  // its value
		w   = e.ins.weights[nd.level] // its weight
	)

	// Exclude: inherit value and weight, share the inclusion set.
	exc := node{
		level:  lvl,
		value:  nd.value,
		weight: nd.weight,
		levels: nd.levels,
	}
	exc.bound = e.bnd.estimate(e.ins, lvl, exc.value, exc.weight)
	e.offer(exc)

	// Include: only when the item still fits; private inclusion set copy.
	if nd.weight+w <= e.ins.capacity {
		inc := node{
			level:  lvl,
			value:  nd.value + v,
			weight: nd.weight + w,
			levels: nd.withLevel(lvl),
		}
		inc.bound = e.bnd.estimate(e.ins, lvl, inc.value, inc.weight)
		e.offer(inc)
	}
}

// offer records a candidate child: the incumbent is updated first, then
// the child enters the frontier only if its bound still strictly beats the
// updated incumbent. Children failing the gate count as pruned.
func (e *engine) offer(nd node) {
	if nd.value > e.best {
		e.best = nd.value
		e.bestLevels = nd.levels
	}
	if nd.bound > float64(e.best) {
		e.front.push(nd)

		return
	}
	e.pruned++
}

// finalize converts the incumbent's level set into the 0/1 selection
// vector over original positions, recomputing the value as a guard
// against mapping drift.
func (e *engine) finalize(items []Item) (Result, error) {
	taken := make([]int, len(items))

	var lvl int
	for _, lvl = range e.bestLevels {
		taken[e.ins.items[lvl-1].Index] = 1
	}

	// Recompute over the caller's order; the two totals must agree.
	var (
		recomputed int64
		it         Item
	)
	for _, it = range items {
		if taken[it.Index] == 1 {
			recomputed += it.Value
		}
	}
	if recomputed != e.best {
		return Result{}, fmt.Errorf("%w: incumbent %d, selection %d", ErrResultMismatch, e.best, recomputed)
	}

	return Result{Value: e.best, Taken: taken, Explored: e.explored, Pruned: e.pruned}, nil
}
