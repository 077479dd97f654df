// Package search implements Dijkstra's least-cost search over the implicit
// graph whose vertices are board States and whose edges are the moves
// produced by package moves.
//
// Complexity:
//
//   - Time:  O((V + E) log V) for V reachable states and E generated moves.
//   - Space: O(V + E): best-cost map and visited set hold V states, the
//     heap holds up to E entries under lazy decrease-key.
//
// Notes on implementation choices:
//
//   - Every move cost is a positive integer, so the first time the goal is
//     popped its cost is final.
//   - We use a lazy decrease-key strategy: an improved cost pushes a new
//     heap entry, and outdated entries are skipped when popped.
//   - All bookkeeping is owned by a single Search call and never shared.
package search

import (
	"fmt"
	"math"
	"slices"

	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/moves"
)

// Search computes the minimum total cost of moving from start to the goal
// State of l.
//
// Preconditions and validation (in order):
//  1. l must be non-nil (ErrNilLayout).
//  2. Options must be valid (ErrOptionViolation).
//  3. start must satisfy l.Validate (ErrInvalidStart wrapping the board error).
//
// The search runs to completion in one call. It returns ErrUnreachable when
// the frontier is exhausted (or every remaining state lies beyond MaxCost)
// without reaching the goal; a start equal to the goal costs 0.
func Search(l *board.Layout, start board.State, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if l == nil {
		return nil, ErrNilLayout
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if err := l.Validate(start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStart, err)
	}

	// 3) Prepare the runner and run the main loop
	r := &runner{
		layout:  l,
		options: cfg,
		start:   start,
		goal:    board.Goal(l),
		best:    make(map[board.State]int64),
		visited: mapset.New[board.State](),
		pq: heap.New(func(a, b entry) bool {
			return a.cost < b.cost
		}),
	}
	if cfg.ReturnPath {
		r.prev = make(map[board.State]step)
	}

	return r.run()
}

// entry is a (cost, state) pair kept in the priority queue.
type entry struct {
	state board.State
	cost  int64
}

// step records how a state was reached at its best-known cost.
type step struct {
	from board.State
	move moves.Move
}

// runner holds the mutable state for a single search.
type runner struct {
	layout  *board.Layout
	options Options
	start   board.State
	goal    board.State

	best    map[board.State]int64   // best-known cost so far
	prev    map[board.State]step    // predecessor of each state at its best cost
	visited mapset.Set[board.State] // finalized states
	pq      *heap.Heap[entry]       // min-heap by cost, with stale duplicates

	stats Stats
}

// run seeds the queue with the start state and pops until the goal is
// finalized or the queue drains.
func (r *runner) run() (*Result, error) {
	r.best[r.start] = 0
	r.push(r.start, 0)

	for r.pq.Size() > 0 {
		// 1) Pop the cheapest entry.
		item, _ := r.pq.Pop()

		// 2) Skip stale entries: already finalized, or superseded by a
		//    cheaper push for the same state.
		if r.visited.Has(item.state) || item.cost > r.best[item.state] {
			r.stats.Stale++
			continue
		}

		// 3) Finalize it.
		r.visited.Put(item.state)
		r.options.OnPop(item.state, item.cost)

		// 4) The goal is final on its first pop.
		if item.state == r.goal {
			return r.result(item.cost), nil
		}

		// 5) Relax its successors.
		r.relax(item)
		r.stats.Expanded++
		if r.options.ProgressEvery > 0 && r.stats.Expanded%r.options.ProgressEvery == 0 {
			r.options.Progress(r.stats)
		}
	}

	if r.options.MaxCost < math.MaxInt64 {
		return nil, fmt.Errorf("%w: no solution within cost %d after %d states", ErrUnreachable, r.options.MaxCost, r.stats.Expanded)
	}

	return nil, fmt.Errorf("%w: frontier exhausted after %d states", ErrUnreachable, r.stats.Expanded)
}

// relax pushes every successor of u whose cost through u improves on its
// best-known cost.
func (r *runner) relax(u entry) {
	for _, m := range moves.Successors(r.layout, u.state) {
		if r.options.CheckInvariants {
			r.check(u.state, m)
		}
		if r.visited.Has(m.Next) {
			continue
		}

		newCost := u.cost + m.Cost
		if newCost > r.options.MaxCost {
			continue
		}
		// Strictly better only; equal costs would just add duplicates.
		if old, ok := r.best[m.Next]; ok && newCost >= old {
			continue
		}

		r.best[m.Next] = newCost
		if r.prev != nil {
			r.prev[m.Next] = step{from: u.state, move: m}
		}
		r.push(m.Next, newCost)
	}
}

// check panics if m breaks a board invariant or has a non-positive cost.
func (r *runner) check(from board.State, m moves.Move) {
	if m.Cost <= 0 {
		panic(fmt.Sprintf("search: move %s from %s has non-positive cost", m, from.Format(r.layout)))
	}
	if err := r.layout.Validate(m.Next); err != nil {
		panic(fmt.Sprintf("search: move %s from %s broke an invariant: %v", m, from.Format(r.layout), err))
	}
}

func (r *runner) push(s board.State, cost int64) {
	r.pq.Push(entry{state: s, cost: cost})
	r.stats.Pushed++
}

// result builds the Result for a goal reached at cost.
func (r *runner) result(cost int64) *Result {
	res := &Result{Cost: cost, Stats: r.stats}
	if r.prev == nil {
		return res
	}

	// Walk predecessors back from the goal.
	path := []moves.Move{}
	for s := r.goal; s != r.start; {
		st := r.prev[s]
		path = append(path, st.move)
		s = st.from
	}
	slices.Reverse(path)
	res.Path = path

	return res
}
