package board

import (
	"fmt"
	"strings"
)

// State is a complete snapshot of the hallway and all rooms.
//
// Room slot 0 is the entrance slot, slot depth-1 the back wall. Slots beyond
// the Layout bounds are always Empty, so two States are equal under == iff
// every hallway and room slot matches. State is a value type: every
// transition returns a new State and the receiver is never modified.
type State struct {
	hall  [MaxHallway]Kind
	rooms [NumKinds][MaxDepth]Kind
}

// NewState builds a State from a hallway of l.HallwayLen() slots and
// NumKinds rooms of l.Depth() slots each (entrance first), then validates it.
func NewState(l *Layout, hallway []Kind, rooms [][]Kind) (State, error) {
	var s State
	if len(hallway) != l.hallway {
		return State{}, fmt.Errorf("%w: got %d slots, want %d", ErrHallwayLength, len(hallway), l.hallway)
	}
	if len(rooms) != NumKinds {
		return State{}, fmt.Errorf("%w: got %d rooms, want %d", ErrRoomCount, len(rooms), NumKinds)
	}
	copy(s.hall[:], hallway)
	for r, room := range rooms {
		if len(room) != l.depth {
			return State{}, fmt.Errorf("%w: room %d has %d slots, want %d", ErrRoomDepth, r, len(room), l.depth)
		}
		copy(s.rooms[r][:], room)
	}
	if err := l.Validate(s); err != nil {
		return State{}, err
	}

	return s, nil
}

// Goal returns the unique State with every room filled by its home kind
// and an empty hallway.
func Goal(l *Layout) State {
	var s State
	for r := 0; r < NumKinds; r++ {
		for i := 0; i < l.depth; i++ {
			s.rooms[r][i] = l.HomeKind(r)
		}
	}

	return s
}

// Hall returns the occupant of hallway column col.
func (s State) Hall(col int) Kind { return s.hall[col] }

// Slot returns the occupant of slot i of room.
func (s State) Slot(room, i int) Kind { return s.rooms[room][i] }

// Top returns the entrance-most occupied slot of room, or ok=false if the
// room is empty.
func (s State) Top(l *Layout, room int) (slot int, ok bool) {
	for i := 0; i < l.depth; i++ {
		if s.rooms[room][i] != Empty {
			return i, true
		}
	}

	return 0, false
}

// Target returns the deepest free slot of room, or ok=false if the room is
// full. Under stack discipline that slot sits right above the occupants.
func (s State) Target(l *Layout, room int) (slot int, ok bool) {
	for i := l.depth - 1; i >= 0; i-- {
		if s.rooms[room][i] == Empty {
			return i, true
		}
	}

	return 0, false
}

// IsStable reports whether every occupied slot of room holds its home kind.
// An empty room is stable.
func (s State) IsStable(l *Layout, room int) bool {
	home := l.HomeKind(room)
	for i := 0; i < l.depth; i++ {
		if k := s.rooms[room][i]; k != Empty && k != home {
			return false
		}
	}

	return true
}

// IsGoal reports whether s is the goal State of l.
func (s State) IsGoal(l *Layout) bool { return s == Goal(l) }

// Count returns how many slots of s hold k.
func (s State) Count(k Kind) int {
	n := 0
	for _, c := range s.hall {
		if c == k {
			n++
		}
	}
	for r := range s.rooms {
		for _, c := range s.rooms[r] {
			if c == k {
				n++
			}
		}
	}

	return n
}

// Exit returns the State after the entrance-most occupant of room moves to
// hallway column col. The move is not checked for legality.
func (s State) Exit(l *Layout, room, col int) State {
	slot, ok := s.Top(l, room)
	if !ok {
		return s
	}
	s.hall[col] = s.rooms[room][slot]
	s.rooms[room][slot] = Empty

	return s
}

// Enter returns the State after the occupant of hallway column col moves
// into the deepest free slot of its home room. The move is not checked for
// legality.
func (s State) Enter(l *Layout, col int) State {
	k := s.hall[col]
	if !k.Valid() {
		return s
	}
	room := l.RoomFor(k)
	slot, ok := s.Target(l, room)
	if !ok {
		return s
	}
	s.hall[col] = Empty
	s.rooms[room][slot] = k

	return s
}

// Compare orders States by hallway then rooms, slot by slot.
// It returns -1, 0 or +1.
func (s State) Compare(o State) int {
	for i := range s.hall {
		if s.hall[i] != o.hall[i] {
			return cmpKind(s.hall[i], o.hall[i])
		}
	}
	for r := range s.rooms {
		for i := range s.rooms[r] {
			if s.rooms[r][i] != o.rooms[r][i] {
				return cmpKind(s.rooms[r][i], o.rooms[r][i])
			}
		}
	}

	return 0
}

func cmpKind(a, b Kind) int {
	if a < b {
		return -1
	}

	return 1
}

// Format renders s within the bounds of l as "hallway/room0/room1/...",
// rooms listed entrance first. For example the reference start is
// ".........../BA/CD/BC/DA".
func (s State) Format(l *Layout) string {
	var b strings.Builder
	for i := 0; i < l.hallway; i++ {
		b.WriteString(s.hall[i].String())
	}
	for r := 0; r < NumKinds; r++ {
		b.WriteByte('/')
		for i := 0; i < l.depth; i++ {
			b.WriteString(s.rooms[r][i].String())
		}
	}

	return b.String()
}

// String renders s using the full array bounds.
func (s State) String() string {
	var b strings.Builder
	for _, k := range s.hall {
		b.WriteString(k.String())
	}
	for r := range s.rooms {
		b.WriteByte('/')
		for _, k := range s.rooms[r] {
			b.WriteString(k.String())
		}
	}

	return b.String()
}
