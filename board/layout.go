package board

import "fmt"

// Options holds the parameters a Layout is built from.
type Options struct {
	// Hallway is the number of hallway slots.
	Hallway int

	// Depth is the number of slots per room.
	Depth int

	// Entrances holds the hallway column above each room, in room order.
	Entrances [NumKinds]int

	// StepCosts holds the per-step movement cost of each kind, in room order.
	StepCosts [NumKinds]int64

	// internal error recorded during option parsing
	err error
}

// Option configures a Layout via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation by NewLayout.
type Option func(*Options)

// DefaultOptions returns the reference puzzle parameters:
//   - an 11-slot hallway
//   - rooms of depth 2
//   - entrances at columns 2, 4, 6, 8
//   - step costs 1, 10, 100, 1000
func DefaultOptions() Options {
	return Options{
		Hallway:   11,
		Depth:     2,
		Entrances: [NumKinds]int{2, 4, 6, 8},
		StepCosts: [NumKinds]int64{1, 10, 100, 1000},
	}
}

// WithDepth sets the room depth (1..MaxDepth).
func WithDepth(d int) Option {
	return func(o *Options) {
		if d < 1 || d > MaxDepth {
			o.err = fmt.Errorf("%w: depth %d outside 1..%d", ErrOptionViolation, d, MaxDepth)
			return
		}
		o.Depth = d
	}
}

// WithHallway sets the hallway length (NumKinds..MaxHallway).
func WithHallway(n int) Option {
	return func(o *Options) {
		if n < NumKinds || n > MaxHallway {
			o.err = fmt.Errorf("%w: hallway length %d outside %d..%d", ErrOptionViolation, n, NumKinds, MaxHallway)
			return
		}
		o.Hallway = n
	}
}

// WithEntrances sets the entrance column of each room. Columns must be
// strictly increasing; they are checked against the hallway by NewLayout.
func WithEntrances(cols [NumKinds]int) Option {
	return func(o *Options) {
		for i := 1; i < NumKinds; i++ {
			if cols[i] <= cols[i-1] {
				o.err = fmt.Errorf("%w: entrances %v not strictly increasing", ErrOptionViolation, cols)
				return
			}
		}
		o.Entrances = cols
	}
}

// WithStepCosts sets the per-step cost of each kind. Costs must be positive.
func WithStepCosts(costs [NumKinds]int64) Option {
	return func(o *Options) {
		for i, c := range costs {
			if c <= 0 {
				o.err = fmt.Errorf("%w: step cost of %s is %d", ErrOptionViolation, Kind(i+1), c)
				return
			}
		}
		o.StepCosts = costs
	}
}

// Layout is the fixed geometry and cost table of one puzzle variant.
// A Layout is immutable once built and safe for concurrent use.
type Layout struct {
	hallway    int
	depth      int
	entrances  [NumKinds]int
	costs      [NumKinds]int64
	isEntrance [MaxHallway]bool
}

// NewLayout builds a Layout from DefaultOptions overridden by opts.
// Returns ErrOptionViolation (wrapped) for any invalid or inconsistent option.
func NewLayout(opts ...Option) (*Layout, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Entrances are validated on their own by WithEntrances; the hallway
	// bound can only be checked once both options are applied.
	if o.Entrances[0] < 0 || o.Entrances[NumKinds-1] >= o.Hallway {
		return nil, fmt.Errorf("%w: entrances %v outside hallway of %d", ErrOptionViolation, o.Entrances, o.Hallway)
	}

	l := &Layout{
		hallway:   o.Hallway,
		depth:     o.Depth,
		entrances: o.Entrances,
		costs:     o.StepCosts,
	}
	for _, c := range o.Entrances {
		l.isEntrance[c] = true
	}

	return l, nil
}

// Classic returns the reference layout at the given depth.
// It panics if depth is outside 1..MaxDepth.
func Classic(depth int) *Layout {
	l, err := NewLayout(WithDepth(depth))
	if err != nil {
		panic(err)
	}

	return l
}

// Depth returns the number of slots per room.
func (l *Layout) Depth() int { return l.depth }

// HallwayLen returns the number of hallway slots.
func (l *Layout) HallwayLen() int { return l.hallway }

// Entrance returns the hallway column above room.
func (l *Layout) Entrance(room int) int { return l.entrances[room] }

// IsEntrance reports whether col is an entrance column.
func (l *Layout) IsEntrance(col int) bool { return col >= 0 && col < l.hallway && l.isEntrance[col] }

// RoomFor returns the home room of k. k must be a valid kind.
func (l *Layout) RoomFor(k Kind) int { return int(k - Amber) }

// HomeKind returns the kind whose home is room.
func (l *Layout) HomeKind(room int) Kind { return Kind(room) + Amber }

// StepCost returns the cost of moving k by one slot. Empty costs 0.
func (l *Layout) StepCost(k Kind) int64 {
	if !k.Valid() {
		return 0
	}

	return l.costs[k-Amber]
}

// String summarizes the layout parameters.
func (l *Layout) String() string {
	return fmt.Sprintf("hallway=%d depth=%d entrances=%v costs=%v", l.hallway, l.depth, l.entrances, l.costs)
}
