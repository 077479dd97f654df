package moves

import "github.com/katalvlaran/burrow/board"

// CanExit reports whether room has an occupant allowed to leave, and which
// slot it leaves from. Stable rooms never release anyone; otherwise only
// the entrance-most occupant may move.
func CanExit(l *board.Layout, s board.State, room int) (slot int, ok bool) {
	if s.IsStable(l, room) {
		return 0, false
	}

	return s.Top(l, room)
}

// CanEnter reports whether the occupant of hallway column col can walk into
// its home room, returning that room and the slot it would fill.
//
// The hallway strictly between col and the room entrance must be free, and
// the room must hold nothing but its home kind.
func CanEnter(l *board.Layout, s board.State, col int) (room, slot int, ok bool) {
	who := s.Hall(col)
	if !who.Valid() {
		return 0, 0, false
	}
	room = l.RoomFor(who)
	if !s.IsStable(l, room) {
		return 0, 0, false
	}
	slot, ok = s.Target(l, room)
	if !ok {
		return 0, 0, false
	}
	if !PathClear(l, s, col, l.Entrance(room)) {
		return 0, 0, false
	}

	return room, slot, true
}

// PathClear reports whether every hallway slot strictly between columns
// from and to is free. The endpoints are not inspected.
func PathClear(l *board.Layout, s board.State, from, to int) bool {
	if from > to {
		from, to = to, from
	}
	for c := from + 1; c < to; c++ {
		if s.Hall(c) != board.Empty {
			return false
		}
	}

	return true
}

// Stops returns the hallway columns an entity standing at col can walk to
// and rest on: scanning left, then right, until an occupied slot or the
// wall. Entrance columns are passed over but never returned.
func Stops(l *board.Layout, s board.State, col int) []int {
	var out []int
	for c := col - 1; c >= 0 && s.Hall(c) == board.Empty; c-- {
		if !l.IsEntrance(c) {
			out = append(out, c)
		}
	}
	for c := col + 1; c < l.HallwayLen() && s.Hall(c) == board.Empty; c++ {
		if !l.IsEntrance(c) {
			out = append(out, c)
		}
	}

	return out
}
