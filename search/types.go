// Package search defines the options, results and sentinel errors of the
// least-cost search over board States.
//
// Options:
//
//	– ReturnPath:      if true, Result.Path holds the moves of one cheapest solution.
//	– MaxCost:         optional cap; states costlier than this are never relaxed.
//	– OnPop:           hook called for every finalized state, in pop order.
//	– Progress:        hook called with Stats every ProgressEvery finalized states.
//	– CheckInvariants: validate every generated successor; a violation panics.
//
// Errors (sentinel):
//
//	– ErrNilLayout        if the provided layout pointer is nil.
//	– ErrOptionViolation  if an invalid option was supplied.
//	– ErrInvalidStart     if the start state fails board validation.
//	– ErrUnreachable      if the frontier is exhausted without reaching the goal.
package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/moves"
)

// Sentinel errors returned by Search.
var (
	// ErrNilLayout indicates that a nil *board.Layout was passed to Search.
	ErrNilLayout = errors.New("search: layout is nil")

	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrInvalidStart indicates that the start state is malformed. The
	// underlying board error is wrapped alongside it.
	ErrInvalidStart = errors.New("search: invalid start state")

	// ErrUnreachable indicates that no sequence of moves reaches the goal.
	ErrUnreachable = errors.New("search: goal state unreachable")
)

// Stats counts the work done by one search.
type Stats struct {
	Expanded int // states finalized and expanded
	Pushed   int // entries pushed onto the priority queue
	Stale    int // popped entries skipped as already finalized or outdated
}

// Result is the outcome of a successful search.
type Result struct {
	// Cost is the minimum total cost from the start to the goal.
	Cost int64

	// Path holds the moves of one cheapest solution, start to goal.
	// It is nil unless WithReturnPath was given.
	Path []moves.Move

	// Stats describes the work performed.
	Stats Stats
}

// Options configures a search.
type Options struct {
	ReturnPath      bool                            // keep predecessors and rebuild Path
	MaxCost         int64                           // do not relax beyond this cost
	OnPop           func(s board.State, cost int64) // called for each finalized state
	Progress        func(Stats)                     // called every ProgressEvery expansions
	ProgressEvery   int                             // interval for Progress
	CheckInvariants bool                            // validate every successor

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with no cost cap, no path tracking and no
// hooks.
func DefaultOptions() Options {
	return Options{
		ReturnPath:      false,
		MaxCost:         math.MaxInt64,
		OnPop:           func(board.State, int64) {},
		Progress:        func(Stats) {},
		ProgressEvery:   0,
		CheckInvariants: false,
	}
}

// WithReturnPath enables predecessor tracking so that Result.Path is filled.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost caps the explored cost. States whose cost would exceed max are
// not relaxed; if the goal lies beyond the cap Search returns ErrUnreachable.
// Negative values are recorded as ErrOptionViolation.
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithOnPop registers a hook called once per finalized state with its
// final cost. Costs arrive in non-decreasing order.
func WithOnPop(fn func(s board.State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPop = fn
		}
	}
}

// WithProgress registers a hook called with the running Stats every `every`
// expanded states. every must be positive.
func WithProgress(every int, fn func(Stats)) Option {
	return func(o *Options) {
		if every <= 0 {
			o.err = fmt.Errorf("%w: progress interval must be positive (%d)", ErrOptionViolation, every)
			return
		}
		if fn != nil {
			o.Progress = fn
			o.ProgressEvery = every
		}
	}
}

// WithInvariantChecks validates every generated successor against the
// layout. A failing successor means the move generator is broken, and
// Search panics.
func WithInvariantChecks() Option {
	return func(o *Options) {
		o.CheckInvariants = true
	}
}
