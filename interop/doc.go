// Package interop converts between bitvec.BitVector and the bitmap types
// used elsewhere in the ecosystem.
//
// bits-and-blooms/bitset stores bits in []uint64 with the same
// least-significant-bit-first layout as BitVector, so conversion is a word
// copy. Roaring bitmaps are position sets; conversion walks set bits.
package interop
