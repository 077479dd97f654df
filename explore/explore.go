// Package explore walks the board State graph breadth-first, returning
// move-count distances, parent links and visit order.
//
// A walk explores states in increasing number of moves from a start state,
// with an optional visit hook, depth and state limits, and move filtering.
// It ignores move costs; least-cost search lives in package search.
package explore

import (
	"context"
	"fmt"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/moves"
)

// queueItem pairs a state with its depth.
type queueItem struct {
	state board.State
	depth int
}

// walker encapsulates mutable walk state.
type walker struct {
	layout *board.Layout
	opts   Options
	ctx    context.Context
	queue  []queueItem
	res    *Result
}

// Walk runs a breadth-first walk from start over the moves of l,
// applying any number of functional Options.
// Returns ErrNilLayout, ErrOptionViolation or ErrInvalidStart for invalid
// input, ErrStateLimit when MaxStates is exceeded, the context error on
// cancellation, or any OnVisit error. The partial Result is returned
// alongside a walk-time error.
func Walk(l *board.Layout, start board.State, opts ...Option) (*Result, error) {
	if l == nil {
		return nil, ErrNilLayout
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := l.Validate(start); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidStart, err)
	}

	w := &walker{
		layout: l,
		opts:   o,
		ctx:    o.Ctx,
		res: &Result{
			Depth:  make(map[board.State]int),
			Parent: make(map[board.State]Edge),
		},
	}

	// Seed queue with start state (no parent)
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue records s at depth d and adds it to the queue.
func (w *walker) enqueue(s board.State, d int) {
	w.res.Depth[s] = d
	w.queue = append(w.queue, queueItem{state: s, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueSuccessors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the state in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.state)
	if err := w.opts.OnVisit(item.state, item.depth); err != nil {
		return fmt.Errorf("explore: OnVisit error at %s: %w", item.state.Format(w.layout), err)
	}

	return nil
}

// enqueueSuccessors applies filtering and MaxDepth, and enqueues each
// unseen successor of item.
func (w *walker) enqueueSuccessors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, m := range moves.Successors(w.layout, item.state) {
		if !w.opts.FilterMove(item.state, m) {
			continue
		}
		if _, seen := w.res.Depth[m.Next]; seen {
			continue
		}
		if w.opts.MaxStates > 0 && len(w.res.Depth) >= w.opts.MaxStates {
			return fmt.Errorf("%w: more than %d states", ErrStateLimit, w.opts.MaxStates)
		}
		w.res.Parent[m.Next] = Edge{From: item.state, Move: m}
		w.enqueue(m.Next, nextDepth)
	}

	return nil
}
