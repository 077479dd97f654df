package board

import "fmt"

// Validate checks that s satisfies the invariants of l:
//   - every slot holds Empty or a valid kind (ErrUnknownKind)
//   - nothing occupies a slot beyond the layout (ErrOutOfLayout)
//   - no entity rests on an entrance column (ErrEntranceOccupied)
//   - no room has a free slot deeper than an occupied one (ErrFloating)
//   - each kind occurs exactly Depth times (ErrConservation)
//
// The first violation found is returned, wrapped with its location.
func (l *Layout) Validate(s State) error {
	for col, k := range s.hall {
		if k != Empty && !k.Valid() {
			return fmt.Errorf("%w: hallway column %d holds %d", ErrUnknownKind, col, k)
		}
		if k != Empty && col >= l.hallway {
			return fmt.Errorf("%w: hallway column %d of %d", ErrOutOfLayout, col, l.hallway)
		}
		if k != Empty && l.isEntrance[col] {
			return fmt.Errorf("%w: %s at column %d", ErrEntranceOccupied, k, col)
		}
	}

	for r := range s.rooms {
		for i, k := range s.rooms[r] {
			if k != Empty && !k.Valid() {
				return fmt.Errorf("%w: room %d slot %d holds %d", ErrUnknownKind, r, i, k)
			}
			if k != Empty && i >= l.depth {
				return fmt.Errorf("%w: room %d slot %d of %d", ErrOutOfLayout, r, i, l.depth)
			}
		}
		if err := l.checkStacked(s, r); err != nil {
			return err
		}
	}

	for _, k := range Kinds() {
		if n := s.Count(k); n != l.depth {
			return fmt.Errorf("%w: %d of kind %s, want %d", ErrConservation, n, k, l.depth)
		}
	}

	return nil
}

// checkStacked reports ErrFloating if room has an occupied slot nearer the
// entrance than a free one.
func (l *Layout) checkStacked(s State, room int) error {
	seen := false
	for i := 0; i < l.depth; i++ {
		switch {
		case s.rooms[room][i] != Empty:
			seen = true
		case seen:
			return fmt.Errorf("%w: room %d slot %d is free", ErrFloating, room, i)
		}
	}

	return nil
}
