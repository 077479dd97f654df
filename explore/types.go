// Package explore provides tunable options and error definitions
// for breadth-first walks over the board State graph.
package explore

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/moves"
)

// Sentinel errors for walk execution.
var (
	// ErrNilLayout is returned if a nil layout pointer is passed.
	ErrNilLayout = errors.New("explore: layout is nil")

	// ErrInvalidStart is returned when the start state fails validation.
	ErrInvalidStart = errors.New("explore: invalid start state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")

	// ErrStateLimit is returned when more than MaxStates states are reached.
	ErrStateLimit = errors.New("explore: state limit exceeded")
)

// Option configures Walk behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when Walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a state. If it returns an error,
	// the walk aborts and propagates that error.
	OnVisit func(s board.State, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many moves.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxStates, if > 0, aborts with ErrStateLimit once more states than
	// this have been discovered.
	MaxStates int

	// FilterMove can skip moves by returning false.
	FilterMove func(from board.State, m moves.Move) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth or state limit
//   - no filtering (all moves followed)
//   - no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnVisit:    func(board.State, int) error { return nil },
		MaxDepth:   0,
		MaxStates:  0,
		FilterMove: func(board.State, moves.Move) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the walk.
func WithOnVisit(fn func(s board.State, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at the given number of moves.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates aborts the walk with ErrStateLimit once more than n states
// are discovered. n == 0 disables the limit; n < 0 is a violation.
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithFilterMove skips moves when fn returns false.
func WithFilterMove(fn func(from board.State, m moves.Move) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterMove = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: states visited, in visit sequence.
//   - Depth: map from state to its distance (in moves) from the start.
//   - Parent: map from state to the move that first reached it.
type Result struct {
	Order  []board.State
	Depth  map[board.State]int
	Parent map[board.State]Edge
}

// Edge is a move together with the state it was taken from.
type Edge struct {
	From board.State
	Move moves.Move
}

// PathTo reconstructs the moves from the start state to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest board.State) ([]moves.Move, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("explore: no path to %s", dest)
	}
	// build reversed path
	path := []moves.Move{}
	for cur := dest; ; {
		e, ok := r.Parent[cur]
		if !ok {
			break
		}
		path = append(path, e.Move)
		cur = e.From
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
