// Package minicube models the 8 corners of a 3x3 twisty puzzle as a small
// state machine: each slot holds a corner identity and a twist, and face
// turns permute four slots while adjusting their twists.
//
// # Features
//
//   - Immutable State value with validated construction
//   - A fixed move table for R, L, U, D, F and B quarter turns
//   - Token and sequence application in standard notation (R, R', R2)
//   - Solved-state detection
//   - A Tracker for interactive sessions with history and undo
//
// # Quick Start
//
//	s := minicube.Identity()
//
//	// Apply a sequence from notation
//	s, err := s.ApplyNotation("R U R' U R U2 R'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Or typed moves
//	s, _ = s.Apply(minicube.F, minicube.RPrime)
//
//	fmt.Println(s)
//	fmt.Println("Solved:", s.IsSolved())
//
// # Errors
//
// FromRaw fails with ErrInvalidState. Unresolvable tokens fail with
// ErrUnknownMove; inside a sequence they are reported as a *SequenceError
// carrying the token index, and the state returned alongside reflects the
// tokens before it.
package minicube
