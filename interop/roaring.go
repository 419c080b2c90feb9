package interop

import (
	"fmt"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/bitvec"
)

// ToRoaring returns the positions of the set bits of bv as a roaring64 bitmap.
func ToRoaring(bv *bitvec.BitVector) *roaring64.Bitmap {
	rb := roaring64.New()
	size := bv.Len()
	for w, word := range bv.Words() {
		base := uint64(w) * 64
		for word != 0 {
			pos := base + uint64(bits.TrailingZeros64(word))
			if pos >= size {
				break
			}
			rb.Add(pos)
			word &= word - 1 // Clear lowest bit
		}
	}
	return rb
}

// FromRoaring returns a BitVector of size bits with exactly the positions in
// rb set. Positions >= size yield an *bitvec.ErrIndexOutOfRange.
func FromRoaring(rb *roaring64.Bitmap, size uint64) (*bitvec.BitVector, error) {
	bv := bitvec.NewFilled(size, false)
	it := rb.Iterator()
	for it.HasNext() {
		if err := bv.Put(it.Next(), true); err != nil {
			return nil, fmt.Errorf("from roaring: %w", err)
		}
	}
	return bv, nil
}
