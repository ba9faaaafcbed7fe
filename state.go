package minicube

import (
	"encoding/json"
	"fmt"
	"strings"
)

// NumCorners is the number of corner slots.
const NumCorners = 8

// Corner identifies one corner cubie, named by the faces it touches in its
// home slot.
type Corner uint8

const (
	UFR Corner = 0
	URB Corner = 1
	UBL Corner = 2
	ULF Corner = 3
	DFR Corner = 4
	DRB Corner = 5
	DBL Corner = 6
	DLF Corner = 7
)

func (c Corner) String() string {
	switch c {
	case UFR:
		return "UFR"
	case URB:
		return "URB"
	case UBL:
		return "UBL"
	case ULF:
		return "ULF"
	case DFR:
		return "DFR"
	case DRB:
		return "DRB"
	case DBL:
		return "DBL"
	case DLF:
		return "DLF"
	default:
		return "?"
	}
}

// State is the configuration of the 8 corner slots.
//
// perm[slot] is the corner occupying slot and orient[slot] its twist
// (0 = untwisted, 1 or 2). perm is always a bijection on 0..7 and every
// orient value is below 3. State is a value: moves return a new State and
// never modify the receiver, so copies may be shared freely.
type State struct {
	perm   [NumCorners]uint8
	orient [NumCorners]uint8
}

// Identity returns the solved state: every corner home and untwisted.
func Identity() State {
	var s State
	for i := range s.perm {
		s.perm[i] = uint8(i)
	}
	return s
}

// FromRaw builds a State from an externally supplied permutation and
// orientation. It fails with ErrInvalidState if either has the wrong length,
// the permutation repeats or omits a corner, or an orientation is outside
// {0,1,2}.
func FromRaw(permutation, orientation []int) (State, error) {
	var s State

	if len(permutation) != NumCorners {
		return State{}, fmt.Errorf("%w: permutation has %d entries, want %d", ErrInvalidState, len(permutation), NumCorners)
	}
	if len(orientation) != NumCorners {
		return State{}, fmt.Errorf("%w: orientation has %d entries, want %d", ErrInvalidState, len(orientation), NumCorners)
	}

	var seen [NumCorners]bool
	for slot, c := range permutation {
		if c < 0 || c >= NumCorners {
			return State{}, fmt.Errorf("%w: slot %d holds corner %d, out of range", ErrInvalidState, slot, c)
		}
		if seen[c] {
			return State{}, fmt.Errorf("%w: corner %d appears more than once", ErrInvalidState, c)
		}
		seen[c] = true
		s.perm[slot] = uint8(c)
	}

	for slot, o := range orientation {
		if o < 0 || o > 2 {
			return State{}, fmt.Errorf("%w: slot %d has orientation %d", ErrInvalidState, slot, o)
		}
		s.orient[slot] = uint8(o)
	}

	return s, nil
}

// IsSolved returns true if every corner is in its home slot with zero twist.
func (s State) IsSolved() bool {
	return s == Identity()
}

// Permutation returns the corner in each slot as a fresh slice.
func (s State) Permutation() []int {
	out := make([]int, NumCorners)
	for i, c := range s.perm {
		out[i] = int(c)
	}
	return out
}

// Orientation returns the twist of each slot as a fresh slice.
func (s State) Orientation() []int {
	out := make([]int, NumCorners)
	for i, o := range s.orient {
		out[i] = int(o)
	}
	return out
}

// CornerAt returns the corner occupying slot and its orientation.
func (s State) CornerAt(slot int) (Corner, int) {
	return Corner(s.perm[slot]), int(s.orient[slot])
}

// Twist returns the sum of all orientations mod 3. Every generator in the
// standard table preserves it, so any state reachable from Identity has
// twist 0.
func (s State) Twist() int {
	sum := 0
	for _, o := range s.orient {
		sum += int(o)
	}
	return sum % 3
}

// valid checks both invariants. Moves preserve them by construction.
func (s State) valid() bool {
	var seen [NumCorners]bool
	for i := range s.perm {
		if s.perm[i] >= NumCorners || seen[s.perm[i]] || s.orient[i] > 2 {
			return false
		}
		seen[s.perm[i]] = true
	}
	return true
}

// String returns the two-line text form:
//
//	Corners: [0 1 2 3 4 5 6 7]
//	Orientations: [0 0 0 0 0 0 0 0]
func (s State) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Corners: %v\n", s.Permutation())
	fmt.Fprintf(&b, "Orientations: %v", s.Orientation())
	return b.String()
}

type stateJSON struct {
	Permutation []int `json:"permutation"`
	Orientation []int `json:"orientation"`
}

// MarshalJSON encodes the state as {"permutation":[...],"orientation":[...]}.
func (s State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{
		Permutation: s.Permutation(),
		Orientation: s.Orientation(),
	})
}

// UnmarshalJSON decodes and validates a state produced by MarshalJSON.
func (s *State) UnmarshalJSON(data []byte) error {
	var raw stateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode state: %w", err)
	}
	decoded, err := FromRaw(raw.Permutation, raw.Orientation)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}
