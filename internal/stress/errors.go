package stress

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned by New for out-of-range options.
	ErrInvalidConfig = errors.New("invalid stress configuration")

	// ErrMismatch is wrapped by every *MismatchError.
	ErrMismatch = errors.New("bit mismatch")
)

// MismatchError describes the first position where a vector disagreed with
// the sequence pushed into it.
type MismatchError struct {
	Round int
	Seed  int64
	Check string
	Pos   uint64
	Want  bool
	Got   bool
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("round %d (seed %d): %s at position %d: want %v, got %v",
		e.Round, e.Seed, e.Check, e.Pos, e.Want, e.Got)
}

func (e *MismatchError) Unwrap() error { return ErrMismatch }
