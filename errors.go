package minicube

import (
	"errors"
	"fmt"
)

// Sentinel errors for the minicube package.
var (
	// State errors
	ErrInvalidState = errors.New("minicube: invalid corner state")

	// Move errors
	ErrUnknownMove  = errors.New("minicube: unknown move")
	ErrInvalidTable = errors.New("minicube: invalid move table")
)

// SequenceError reports the first token of a sequence that could not be
// applied. Index is the zero-based token position.
type SequenceError struct {
	Index int
	Token string
	Err   error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("%v: token %d %q", e.Err, e.Index, e.Token)
}

func (e *SequenceError) Unwrap() error {
	return e.Err
}
