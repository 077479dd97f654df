// Package moves enumerates the legal transitions of a board.State.
//
// Every transition is a single leg of travel:
//
//   - Exit:  the entrance-most occupant of an unstable room walks out to a
//     free, non-entrance hallway slot it can reach.
//   - Enter: a hallway occupant walks along a clear hallway into the deepest
//     free slot of its home room, provided the room holds only its kind.
//
// An amphipod that goes from one room to another therefore takes two edges
// (exit, then enter). The generator never fails: a State without legal
// moves yields an empty slice.
package moves

import (
	"fmt"

	"github.com/katalvlaran/burrow/board"
)

// Leg identifies the family a Move belongs to.
type Leg uint8

const (
	// Exit moves an entity from a room into the hallway.
	Exit Leg = iota

	// Enter moves an entity from the hallway into its home room.
	Enter
)

// String returns "exit" or "enter".
func (g Leg) String() string {
	if g == Enter {
		return "enter"
	}

	return "exit"
}

// Move is one transition between States together with its cost.
type Move struct {
	Leg   Leg         // Exit or Enter
	Who   board.Kind  // kind of the entity that moved
	Room  int         // room left (Exit) or entered (Enter)
	Slot  int         // room slot vacated (Exit) or filled (Enter)
	Hall  int         // hallway column reached (Exit) or left (Enter)
	Steps int         // slots travelled
	Cost  int64       // Steps × step cost of Who
	Next  board.State // resulting State
}

// String describes the move, e.g. "B exit room 2 slot 0 -> hall 3 (40)".
func (m Move) String() string {
	if m.Leg == Enter {
		return fmt.Sprintf("%s enter hall %d -> room %d slot %d (%d)", m.Who, m.Hall, m.Room, m.Slot, m.Cost)
	}

	return fmt.Sprintf("%s exit room %d slot %d -> hall %d (%d)", m.Who, m.Room, m.Slot, m.Hall, m.Cost)
}

// Successors returns every legal Move out of s: all exits, then all enters.
func Successors(l *board.Layout, s board.State) []Move {
	out := Exits(l, s)

	return append(out, Enters(l, s)...)
}

// Exits returns every legal exit move of s, room by room.
func Exits(l *board.Layout, s board.State) []Move {
	var out []Move
	for room := 0; room < board.NumKinds; room++ {
		slot, ok := CanExit(l, s, room)
		if !ok {
			continue
		}
		who := s.Slot(room, slot)
		door := l.Entrance(room)
		for _, col := range Stops(l, s, door) {
			steps := slot + 1 + distance(col, door)
			out = append(out, Move{
				Leg:   Exit,
				Who:   who,
				Room:  room,
				Slot:  slot,
				Hall:  col,
				Steps: steps,
				Cost:  int64(steps) * l.StepCost(who),
				Next:  s.Exit(l, room, col),
			})
		}
	}

	return out
}

// Enters returns every legal enter move of s, in hallway order.
func Enters(l *board.Layout, s board.State) []Move {
	var out []Move
	for col := 0; col < l.HallwayLen(); col++ {
		room, slot, ok := CanEnter(l, s, col)
		if !ok {
			continue
		}
		who := s.Hall(col)
		steps := distance(col, l.Entrance(room)) + slot + 1
		out = append(out, Move{
			Leg:   Enter,
			Who:   who,
			Room:  room,
			Slot:  slot,
			Hall:  col,
			Steps: steps,
			Cost:  int64(steps) * l.StepCost(who),
			Next:  s.Enter(l, col),
		})
	}

	return out
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}

	return b - a
}
