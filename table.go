package minicube

import "fmt"

// Cycle defines a generator: the corner in Slots[(i+3)%4] moves to Slots[i]
// and gains Twists[i] (mod 3) of orientation on arrival.
type Cycle struct {
	Slots  [4]uint8
	Twists [4]uint8
}

func (c Cycle) validate() error {
	var seen [NumCorners]bool
	for i, slot := range c.Slots {
		if slot >= NumCorners {
			return fmt.Errorf("slot %d out of range", slot)
		}
		if seen[slot] {
			return fmt.Errorf("slot %d repeated", slot)
		}
		seen[slot] = true
		if c.Twists[i] > 2 {
			return fmt.Errorf("twist %d at position %d out of range", c.Twists[i], i)
		}
	}
	return nil
}

// apply performs the backward rotation on a copy of s. All reads come from
// s, so no slot is read after it has been written.
func (c Cycle) apply(s State) State {
	next := s
	for i := 0; i < 4; i++ {
		from := c.Slots[(i+3)%4]
		to := c.Slots[i]
		next.perm[to] = s.perm[from]
		next.orient[to] = (s.orient[from] + c.Twists[i]) % 3
	}
	return next
}

// Table maps quarter-turn moves to their cycles. A Table is read-only after
// construction and safe for concurrent use.
type Table struct {
	cycles map[Move]Cycle
	order  []Move
}

// NewTable builds a table from quarter-turn definitions. Double turns are
// derived and must not be keyed.
func NewTable(cycles map[Move]Cycle) (*Table, error) {
	t := &Table{cycles: make(map[Move]Cycle, len(cycles))}

	for m, c := range cycles {
		if !m.Face.valid() || !m.IsQuarter() {
			return nil, fmt.Errorf("%w: cannot key %q", ErrInvalidTable, m.Notation())
		}
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidTable, m.Notation(), err)
		}
		t.cycles[m] = c
	}

	for _, f := range Faces {
		for _, turn := range []Turn{CW, CCW} {
			m := Move{Face: f, Turn: turn}
			if _, ok := t.cycles[m]; ok {
				t.order = append(t.order, m)
			}
		}
	}

	return t, nil
}

// standardCycles uses corner slots 0 UFR, 1 URB, 2 UBL, 3 ULF, 4 DFR,
// 5 DRB, 6 DBL, 7 DLF. U and D turns never twist; the other faces add
// 1 or 2 alternately around the cycle.
var standardCycles = map[Move]Cycle{
	R:      {Slots: [4]uint8{0, 1, 5, 4}, Twists: [4]uint8{2, 1, 2, 1}},
	RPrime: {Slots: [4]uint8{4, 5, 1, 0}, Twists: [4]uint8{1, 2, 1, 2}},
	U:      {Slots: [4]uint8{0, 3, 2, 1}, Twists: [4]uint8{0, 0, 0, 0}},
	UPrime: {Slots: [4]uint8{1, 2, 3, 0}, Twists: [4]uint8{0, 0, 0, 0}},
	F:      {Slots: [4]uint8{0, 4, 7, 3}, Twists: [4]uint8{1, 2, 1, 2}},
	FPrime: {Slots: [4]uint8{3, 7, 4, 0}, Twists: [4]uint8{2, 1, 2, 1}},
	D:      {Slots: [4]uint8{4, 5, 6, 7}, Twists: [4]uint8{0, 0, 0, 0}},
	DPrime: {Slots: [4]uint8{7, 6, 5, 4}, Twists: [4]uint8{0, 0, 0, 0}},
	L:      {Slots: [4]uint8{2, 3, 7, 6}, Twists: [4]uint8{2, 1, 2, 1}},
	LPrime: {Slots: [4]uint8{3, 2, 6, 7}, Twists: [4]uint8{1, 2, 1, 2}},
	B:      {Slots: [4]uint8{1, 2, 6, 5}, Twists: [4]uint8{2, 1, 2, 1}},
	BPrime: {Slots: [4]uint8{2, 1, 5, 6}, Twists: [4]uint8{1, 2, 1, 2}},
}

var standardTable = mustTable(standardCycles)

func mustTable(cycles map[Move]Cycle) *Table {
	t, err := NewTable(cycles)
	if err != nil {
		panic(err)
	}
	return t
}

// StandardTable returns the process-wide table covering all six faces.
func StandardTable() *Table {
	return standardTable
}

// Moves returns the quarter-turn generators of the table in face order.
func (t *Table) Moves() []Move {
	out := make([]Move, len(t.order))
	copy(out, t.order)
	return out
}

// Lookup resolves a token to a move the table can apply. A double turn
// resolves when its clockwise base is present.
func (t *Table) Lookup(token string) (Move, error) {
	m, err := ParseMove(token)
	if err != nil {
		return Move{}, err
	}
	if err := t.check(m); err != nil {
		return Move{}, err
	}
	return m, nil
}

// Definition returns the cycle of a quarter-turn move.
func (t *Table) Definition(m Move) (Cycle, error) {
	c, ok := t.cycles[m]
	if !ok {
		return Cycle{}, fmt.Errorf("%w: %q", ErrUnknownMove, m.Notation())
	}
	return c, nil
}

func (t *Table) check(m Move) error {
	base := m
	if m.Turn == Double {
		base.Turn = CW
	}
	if _, ok := t.cycles[base]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMove, m.Notation())
	}
	return nil
}
