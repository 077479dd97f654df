package explore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/explore"
	"github.com/katalvlaran/burrow/moves"
)

var reference = []string{"BA", "CD", "BC", "DA"}

// TestWalk_Errors checks input and option validation.
func TestWalk_Errors(t *testing.T) {
	l := board.Classic(2)

	res, err := explore.Walk(nil, board.State{})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, explore.ErrNilLayout)

	_, err = explore.Walk(l, board.Goal(l), explore.WithMaxDepth(-1))
	assert.ErrorIs(t, err, explore.ErrOptionViolation)

	_, err = explore.Walk(l, board.Goal(l), explore.WithMaxStates(-5))
	assert.ErrorIs(t, err, explore.ErrOptionViolation)

	_, err = explore.Walk(l, board.State{})
	assert.ErrorIs(t, err, explore.ErrInvalidStart)
	assert.ErrorIs(t, err, board.ErrConservation)
}

// TestWalk_GoalStart has nowhere to go.
func TestWalk_GoalStart(t *testing.T) {
	l := board.Classic(3)
	res, err := explore.Walk(l, board.Goal(l))
	require.NoError(t, err)

	assert.Equal(t, []board.State{board.Goal(l)}, res.Order)
	assert.Equal(t, 0, res.Depth[board.Goal(l)])
	assert.Empty(t, res.Parent)
}

// TestWalk_OneMove discovers exactly the successors of the start.
func TestWalk_OneMove(t *testing.T) {
	l := board.Classic(2)
	start := mustState(t, l, "", reference...)

	res, err := explore.Walk(l, start, explore.WithMaxDepth(1))
	require.NoError(t, err)

	assert.Len(t, res.Order, 1+28)
	assert.Equal(t, start, res.Order[0])
	for _, m := range moves.Successors(l, start) {
		assert.Equal(t, 1, res.Depth[m.Next], "move %s", m)
		assert.Equal(t, start, res.Parent[m.Next].From)
	}
}

// TestWalk_Invariants checks the board invariants on every state within
// three moves of the reference start.
func TestWalk_Invariants(t *testing.T) {
	l := board.Classic(2)
	start := mustState(t, l, "", reference...)

	res, err := explore.Walk(l, start, explore.WithMaxDepth(3))
	require.NoError(t, err)
	require.Greater(t, len(res.Order), 29)

	prev := 0
	for _, s := range res.Order {
		require.NoError(t, l.Validate(s), "state %s", s.Format(l))

		for _, k := range board.Kinds() {
			assert.Equal(t, l.Depth(), s.Count(k))
		}
		for room := 0; room < board.NumKinds; room++ {
			assert.Equal(t, board.Empty, s.Hall(l.Entrance(room)))
		}

		d := res.Depth[s]
		assert.GreaterOrEqual(t, d, prev, "visit order is breadth-first")
		prev = d
		if s != start {
			e := res.Parent[s]
			assert.Equal(t, d, res.Depth[e.From]+1)
			assert.Equal(t, s, e.Move.Next)
		}
	}
}

// TestWalk_OnVisitAbort stops at the first visit.
func TestWalk_OnVisitAbort(t *testing.T) {
	l := board.Classic(2)
	stop := errors.New("stop")

	res, err := explore.Walk(l, mustState(t, l, "", reference...),
		explore.WithOnVisit(func(board.State, int) error { return stop }))
	assert.ErrorIs(t, err, stop)
	require.NotNil(t, res)
	assert.Len(t, res.Order, 1)
}

// TestWalk_Cancelled returns the context error before visiting anything.
func TestWalk_Cancelled(t *testing.T) {
	l := board.Classic(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := explore.Walk(l, mustState(t, l, "", reference...), explore.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.Empty(t, res.Order)
}

// TestWalk_StateLimit aborts once the limit is reached.
func TestWalk_StateLimit(t *testing.T) {
	l := board.Classic(2)

	res, err := explore.Walk(l, mustState(t, l, "", reference...), explore.WithMaxStates(10))
	assert.ErrorIs(t, err, explore.ErrStateLimit)
	require.NotNil(t, res)
	assert.Len(t, res.Depth, 10)
}

// TestWalk_FilterMove follows only exits from room 0.
func TestWalk_FilterMove(t *testing.T) {
	l := board.Classic(2)
	res, err := explore.Walk(l, mustState(t, l, "", reference...),
		explore.WithMaxDepth(1),
		explore.WithFilterMove(func(_ board.State, m moves.Move) bool {
			return m.Leg == moves.Exit && m.Room == 0
		}))
	require.NoError(t, err)

	assert.Len(t, res.Order, 1+7)
	for _, e := range res.Parent {
		assert.Equal(t, 0, e.Move.Room)
	}
}

// TestResult_PathTo rebuilds the moves to a state two moves away.
func TestResult_PathTo(t *testing.T) {
	l := board.Classic(2)
	start := mustState(t, l, "", reference...)

	res, err := explore.Walk(l, start, explore.WithMaxDepth(2))
	require.NoError(t, err)

	dest := res.Order[len(res.Order)-1]
	require.Equal(t, 2, res.Depth[dest])

	path, err := res.PathTo(dest)
	require.NoError(t, err)
	require.Len(t, path, 2)
	assert.Equal(t, dest, path[1].Next)

	path, err = res.PathTo(start)
	require.NoError(t, err)
	assert.Empty(t, path)

	_, err = res.PathTo(board.Goal(l))
	assert.Error(t, err)
}

// TestWalk_FullDepthOne walks the whole state space of a depth-1 board.
func TestWalk_FullDepthOne(t *testing.T) {
	l := board.Classic(1)
	start := mustState(t, l, "", "B", "A", "C", "D")

	res, err := explore.Walk(l, start)
	require.NoError(t, err)

	goal := board.Goal(l)
	d, ok := res.Depth[goal]
	require.True(t, ok, "goal must be reachable")
	assert.Equal(t, 4, d, "two exits and two enters")

	path, err := res.PathTo(goal)
	require.NoError(t, err)
	assert.Len(t, path, 4)
}
