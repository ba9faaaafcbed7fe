package minicube

// Tracker owns the evolving state of one session and reports when it
// becomes solved. A Tracker is not safe for concurrent use.
type Tracker struct {
	cfg      *config
	state    State
	history  []Move
	count    int
	onSolved func(moves int)
}

// NewTracker creates a tracker starting from Identity unless WithStart is
// given.
func NewTracker(opts ...Option) *Tracker {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Tracker{
		cfg:   cfg,
		state: cfg.start,
	}
}

// OnSolved sets a callback that fires when a move takes the state from
// unsolved to solved. The argument is the number of moves applied since the
// last reset.
func (t *Tracker) OnSolved(cb func(moves int)) {
	t.onSolved = cb
}

// Reset returns to the start state and clears the history.
func (t *Tracker) Reset() {
	t.state = t.cfg.start
	t.history = nil
	t.count = 0
}

// ApplyMove applies a move and checks for the solved transition.
func (t *Tracker) ApplyMove(m Move) error {
	next, err := t.cfg.table.Apply(t.state, m)
	if err != nil {
		return err
	}
	t.advance(next, m)
	return nil
}

// ApplyNotation applies a sequence atomically: if any token fails, the
// tracker is left exactly as it was.
func (t *Tracker) ApplyNotation(sequence string) error {
	moves, err := ParseMoves(sequence)
	if err != nil {
		return err
	}

	cur := t.state
	for i, m := range moves {
		next, err := t.cfg.table.Apply(cur, m)
		if err != nil {
			return &SequenceError{Index: i, Token: m.Notation(), Err: ErrUnknownMove}
		}
		cur = next
	}

	for _, m := range moves {
		next, _ := t.cfg.table.Apply(t.state, m)
		t.advance(next, m)
	}
	return nil
}

func (t *Tracker) advance(next State, m Move) {
	wasSolved := t.state.IsSolved()
	t.state = next
	if t.cfg.moveHistory {
		t.history = append(t.history, m)
	}
	t.count++

	if !wasSolved && next.IsSolved() && t.onSolved != nil {
		t.onSolved(t.count)
	}
}

// Undo reverts the last move. It returns false if there is nothing to undo
// or history is disabled.
func (t *Tracker) Undo() bool {
	if len(t.history) == 0 {
		return false
	}
	last := t.history[len(t.history)-1]
	prev, err := t.cfg.table.Apply(t.state, last.Inverse())
	if err != nil {
		return false
	}
	t.history = t.history[:len(t.history)-1]
	t.state = prev
	t.count--
	return true
}

// State returns the current state.
func (t *Tracker) State() State {
	return t.state
}

// Moves returns a copy of the move history.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.history))
	copy(out, t.history)
	return out
}

// MoveCount returns the number of moves applied since the last reset,
// whether or not history is kept.
func (t *Tracker) MoveCount() int {
	return t.count
}

// IsSolved returns true if the current state is solved.
func (t *Tracker) IsSolved() bool {
	return t.state.IsSolved()
}

// String returns the current state in text form.
func (t *Tracker) String() string {
	return t.state.String()
}
