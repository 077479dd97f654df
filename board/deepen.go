package board

import "fmt"

// FoldedRows are the two rows that turn the depth-2 reference puzzle into
// its depth-4 variant, listed in room order.
var FoldedRows = [][NumKinds]Kind{
	{Desert, Copper, Bronze, Amber},
	{Desert, Bronze, Amber, Copper},
}

// Deepen inserts rows directly below the entrance slot of every room and
// returns the deeper layout together with the resulting state. rows[0]
// becomes slot 1, rows[1] slot 2 and so on; the existing deeper slots move
// down. The hallway must be empty (ErrHallwayOccupied).
// Returns ErrOptionViolation if the new depth exceeds MaxDepth, or the
// validation error of the result.
func (l *Layout) Deepen(s State, rows ...[NumKinds]Kind) (*Layout, State, error) {
	depth := l.depth + len(rows)
	if depth > MaxDepth {
		return nil, State{}, fmt.Errorf("%w: depth %d exceeds %d", ErrOptionViolation, depth, MaxDepth)
	}
	for col := 0; col < l.hallway; col++ {
		if s.hall[col] != Empty {
			return nil, State{}, fmt.Errorf("%w: hallway column %d is occupied", ErrHallwayOccupied, col)
		}
	}

	deeper := *l
	deeper.depth = depth

	var out State
	for r := 0; r < NumKinds; r++ {
		out.rooms[r][0] = s.rooms[r][0]
		for i, row := range rows {
			out.rooms[r][1+i] = row[r]
		}
		for i := 1; i < l.depth; i++ {
			out.rooms[r][i+len(rows)] = s.rooms[r][i]
		}
	}
	if err := deeper.Validate(out); err != nil {
		return nil, State{}, err
	}

	return &deeper, out, nil
}
