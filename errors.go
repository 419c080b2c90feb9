package bitvec

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned (wrapped) when a position is not below the vector length.
	ErrOutOfRange = errors.New("index out of range")

	// ErrShortBuffer is returned when a word buffer cannot hold the requested number of bits.
	ErrShortBuffer = errors.New("word buffer too short")
)

// ErrIndexOutOfRange indicates an access at or beyond the logical length.
//
// errors.Is(err, ErrOutOfRange) reports true for this error.
type ErrIndexOutOfRange struct {
	Op    string
	Index uint64
	Len   uint64
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("%s: index %d out of range for length %d", e.Op, e.Index, e.Len)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return ErrOutOfRange }

// ErrWordCount indicates a word buffer whose length does not cover the requested bit count.
type ErrWordCount struct {
	Bits  uint64
	Words int
	Need  int
}

func (e *ErrWordCount) Error() string {
	return fmt.Sprintf("%d bits need %d words, got %d", e.Bits, e.Need, e.Words)
}

func (e *ErrWordCount) Unwrap() error { return ErrShortBuffer }
