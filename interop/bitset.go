package interop

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/bitvec"
	"github.com/hupe1980/bitvec/internal/conv"
)

// ToBitSet returns a bitset.BitSet holding the same bits as bv.
//
// Words are copied and bits of the last word beyond bv.Len() are cleared,
// since bitset assumes them to be zero.
func ToBitSet(bv *bitvec.BitVector) *bitset.BitSet {
	words := slices.Clone(bv.Words())
	if n := len(words); n > 0 {
		words[n-1] &= conv.TailMask(bv.Len())
	}
	return bitset.FromWithLength(uint(bv.Len()), words)
}

// FromBitSet returns a BitVector holding the same bits as bs.
func FromBitSet(bs *bitset.BitSet) (*bitvec.BitVector, error) {
	return bitvec.FromWords(bs.Words(), uint64(bs.Len()))
}
