// Package board defines the entity kinds, the puzzle Layout (hallway, rooms,
// entrance columns and per-kind step costs) and the immutable State value
// that the move generator and the search engine operate on.
//
// Errors:
//
//	ErrOptionViolation  - an invalid Layout option was supplied.
//	ErrHallwayLength    - hallway input does not match the layout.
//	ErrRoomCount        - room input does not provide one room per kind.
//	ErrRoomDepth        - a room input does not match the layout depth.
//	ErrUnknownKind      - a slot holds a value outside the kind enumeration.
//	ErrEntranceOccupied - an entity rests on an entrance column.
//	ErrFloating         - a room has a free slot deeper than an occupied one.
//	ErrConservation     - a kind does not occur exactly depth times.
//	ErrOutOfLayout      - a slot beyond the layout bounds is occupied.
//	ErrHallwayOccupied  - Deepen was given a state with entities in the hallway.
package board

import "errors"

// Sentinel errors returned by layout construction and state validation.
var (
	// ErrOptionViolation indicates an invalid Layout option.
	ErrOptionViolation = errors.New("board: invalid layout option")

	// ErrHallwayLength indicates a hallway slice of the wrong length.
	ErrHallwayLength = errors.New("board: wrong hallway length")

	// ErrRoomCount indicates a room slice count other than NumKinds.
	ErrRoomCount = errors.New("board: wrong number of rooms")

	// ErrRoomDepth indicates a room slice of the wrong length.
	ErrRoomDepth = errors.New("board: wrong room depth")

	// ErrUnknownKind indicates a slot value that is neither Empty nor a kind.
	ErrUnknownKind = errors.New("board: unknown entity kind")

	// ErrEntranceOccupied indicates an entity resting on an entrance column.
	ErrEntranceOccupied = errors.New("board: entity rests on an entrance column")

	// ErrFloating indicates a broken stack discipline inside a room.
	ErrFloating = errors.New("board: room has a gap below an occupied slot")

	// ErrConservation indicates a kind count different from the room depth.
	ErrConservation = errors.New("board: kind count does not match room depth")

	// ErrOutOfLayout indicates an occupied slot outside the layout bounds.
	ErrOutOfLayout = errors.New("board: occupied slot outside the layout")

	// ErrHallwayOccupied indicates a hallway that must be empty is not.
	ErrHallwayOccupied = errors.New("board: hallway is not empty")
)

// Structural limits. States are fixed-size arrays sized by these bounds,
// which keeps them comparable and usable as map keys.
const (
	// NumKinds is the number of entity kinds, and therefore of rooms.
	NumKinds = 4

	// MaxDepth is the deepest room a Layout may describe.
	MaxDepth = 8

	// MaxHallway is the longest hallway a Layout may describe.
	MaxHallway = 16
)

// Kind is an entity type. The zero value Empty marks a free slot.
type Kind uint8

const (
	Empty Kind = iota
	Amber
	Bronze
	Copper
	Desert
)

// kindLetters maps a Kind to its single-letter form.
const kindLetters = ".ABCD"

// Valid reports whether k is one of the four entity kinds.
func (k Kind) Valid() bool { return k >= Amber && k <= Desert }

// String returns "." for Empty, "A".."D" for the kinds and "?" otherwise.
func (k Kind) String() string {
	if int(k) < len(kindLetters) {
		return kindLetters[k : k+1]
	}

	return "?"
}

// KindOf maps a letter ('A'..'D', or '.' for Empty) to its Kind.
func KindOf(c byte) (Kind, bool) {
	switch c {
	case '.':
		return Empty, true
	case 'A', 'B', 'C', 'D':
		return Kind(c-'A') + Amber, true
	}

	return Empty, false
}

// Kinds returns the four entity kinds in room order.
func Kinds() [NumKinds]Kind {
	return [NumKinds]Kind{Amber, Bronze, Copper, Desert}
}
