// Package bitvec provides a packed boolean array for Go.
//
// A BitVector stores one logical bit per element inside 64-bit words, using
// roughly one eighth of the memory of a []bool while keeping constant-time
// random access. It is meant to be embedded in larger structures such as
// succinct indexes and bitmaps.
//
// # Quick Start
//
//	bv := bitvec.NewFilled(10, true)
//	bv.Set(5, false)
//	bv.PushBack(true)
//	fmt.Println(bv.Len(), bv.Test(5)) // 11 false
//
// Indexed writes go through a Reference, the stand-in for an addressable bit:
//
//	bv.At(3).Set(false)
//	bv.At(4).Assign(bv.At(3))
//
// # Iteration
//
// Two iterator flavors share the same positioning logic. ConstIterator yields
// bit values and Iterator yields References:
//
//	for it, end := bv.Iter(), bv.End(); !it.Equal(end); it.Next() {
//	    it.Set(true)
//	}
//
// The range-over-func adapters All, Values and Refs cover the common loops.
//
// # Bit Layout
//
// Position p lives in Words()[p/64] at bit p%64, counting from the least
// significant bit. Collaborators that operate on Words() directly (rank and
// select structures, bitmap adapters) must assume exactly this layout.
// Bits of the last word at positions >= Len() are zero after NewFilled,
// FromWords and Resize, and unspecified otherwise; SetAll in particular
// sets them. Equal compares whole words, including those bits.
//
// # Checked and Unchecked Access
//
// Test, Set, At and the iterators do not check positions. Build with
// -tags bitvec_debug to turn precondition violations into a logged panic
// carrying *ErrIndexOutOfRange. Get, Put and Ref always check and return
// the same error instead.
//
// # Concurrency
//
// A BitVector is a single-threaded value. Callers synchronize access
// themselves.
package bitvec
