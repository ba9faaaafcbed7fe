package minicube

import "strings"

// Apply applies a typed move to s. Double turns apply the clockwise base
// twice. s itself is never modified.
func (t *Table) Apply(s State, m Move) (State, error) {
	if err := t.check(m); err != nil {
		return s, err
	}
	if m.Turn == Double {
		base := Move{Face: m.Face, Turn: CW}
		once, _ := t.Apply(s, base)
		return t.Apply(once, base)
	}
	return t.cycles[m].apply(s), nil
}

// ApplyMove resolves a single token and applies it. On error the returned
// state is s unchanged.
func (t *Table) ApplyMove(s State, token string) (State, error) {
	m, err := t.Lookup(token)
	if err != nil {
		return s, err
	}
	return t.Apply(s, m)
}

// ApplySequence applies whitespace-separated tokens left to right.
//
// If a token cannot be resolved, the state after the preceding tokens is
// returned together with a *SequenceError naming the failing token; a nil
// error means the whole sequence was applied. An empty sequence returns s.
func (t *Table) ApplySequence(s State, sequence string) (State, error) {
	cur := s
	for i, token := range strings.Fields(sequence) {
		next, err := t.ApplyMove(cur, token)
		if err != nil {
			return cur, &SequenceError{Index: i, Token: token, Err: ErrUnknownMove}
		}
		cur = next
	}
	return cur, nil
}

// ApplyMove applies one token using the standard table.
func ApplyMove(s State, token string) (State, error) {
	return standardTable.ApplyMove(s, token)
}

// ApplySequence applies a sequence using the standard table.
func ApplySequence(s State, sequence string) (State, error) {
	return standardTable.ApplySequence(s, sequence)
}

// Apply applies typed moves in order using the standard table. It stops at
// the first move the table does not define, which only happens for
// hand-built Move values outside the six faces.
func (s State) Apply(moves ...Move) (State, error) {
	cur := s
	for i, m := range moves {
		next, err := standardTable.Apply(cur, m)
		if err != nil {
			return cur, &SequenceError{Index: i, Token: m.Notation(), Err: ErrUnknownMove}
		}
		cur = next
	}
	return cur, nil
}

// ApplyNotation is shorthand for ApplySequence on the standard table.
func (s State) ApplyNotation(sequence string) (State, error) {
	return standardTable.ApplySequence(s, sequence)
}
