package board_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/board"
)

// kinds converts a string such as "B.A" into board kinds.
func kinds(str string) ([]board.Kind, error) {
	out := make([]board.Kind, len(str))
	for i := 0; i < len(str); i++ {
		k, ok := board.KindOf(str[i])
		if !ok {
			return nil, fmt.Errorf("bad kind %q in %q", str[i], str)
		}
		out[i] = k
	}

	return out, nil
}

// buildState builds a state from a hallway string ("" means an empty
// hallway) and one string per room, entrance first.
func buildState(l *board.Layout, hall string, rooms ...string) (board.State, error) {
	if hall == "" {
		for i := 0; i < l.HallwayLen(); i++ {
			hall += "."
		}
	}
	h, err := kinds(hall)
	if err != nil {
		return board.State{}, err
	}
	rs := make([][]board.Kind, len(rooms))
	for i, r := range rooms {
		if rs[i], err = kinds(r); err != nil {
			return board.State{}, err
		}
	}

	return board.NewState(l, h, rs)
}

// mustState is buildState that fails the test on error.
func mustState(t testing.TB, l *board.Layout, hall string, rooms ...string) board.State {
	t.Helper()
	s, err := buildState(l, hall, rooms...)
	require.NoError(t, err)

	return s
}
