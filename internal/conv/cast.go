package conv

import (
	"fmt"
	"math"
)

// WordBits is the number of bits held by one storage word.
const WordBits = 64

// WordsFor returns ceil(bits/64), the number of words needed to hold bits.
// It fails only when the result does not fit in an int.
func WordsFor(bits uint64) (int, error) {
	n := bits / WordBits
	if bits%WordBits != 0 {
		n++
	}
	w, err := Uint64ToInt(n)
	if err != nil {
		return 0, fmt.Errorf("word count for %d bits: %w", bits, err)
	}
	return w, nil
}

// TailMask returns the mask of valid bits in the last word of a vector
// holding bits bits. A full last word yields all ones.
func TailMask(bits uint64) uint64 {
	rem := bits % WordBits
	if rem == 0 {
		return math.MaxUint64
	}
	return (uint64(1) << rem) - 1
}

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}
