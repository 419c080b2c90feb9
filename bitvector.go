package bitvec

import (
	"slices"
	"strings"

	"github.com/hupe1980/bitvec/internal/conv"
)

const wordBits = conv.WordBits

// BitVector is a packed array of bits stored in 64-bit words.
//
// Position p lives in word p/64 at bit p%64, counting from the least
// significant bit. The word slice always covers exactly Len() bits, rounded
// up to a whole word, unless UnsafeResizeWords was used.
//
// A BitVector is not safe for concurrent use.
type BitVector struct {
	words []uint64
	size  uint64
}

// New creates an empty BitVector.
func New(optFns ...Option) *BitVector {
	opts := options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	bv := &BitVector{}
	if opts.capacity > 0 {
		bv.Reserve(opts.capacity)
	}
	return bv
}

// NewFilled creates a BitVector of count bits, all set to value.
// Bits of the last word beyond count are zero.
func NewFilled(count uint64, value bool) *BitVector {
	n := wordsFor(count)
	bv := &BitVector{
		words: make([]uint64, n), // zeroed by make
		size:  count,
	}
	if value && n > 0 {
		for i := range bv.words {
			bv.words[i] = ^uint64(0)
		}
		if rem := count % wordBits; rem != 0 {
			bv.words[n-1] >>= wordBits - rem
		}
	}
	return bv
}

// FromWords creates a BitVector of size bits backed by a copy of words.
//
// words must hold at least ceil(size/64) entries; extra words are dropped and
// bits of the last word beyond size are cleared.
func FromWords(words []uint64, size uint64) (*BitVector, error) {
	n, err := conv.WordsFor(size)
	if err != nil {
		return nil, err
	}
	if len(words) < n {
		return nil, &ErrWordCount{Bits: size, Words: len(words), Need: n}
	}

	bv := &BitVector{
		words: slices.Clone(words[:n]),
		size:  size,
	}
	bv.clearTail()
	return bv, nil
}

func wordsFor(bits uint64) int {
	n, err := conv.WordsFor(bits)
	if err != nil {
		panic(err)
	}
	return n
}

func bit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// Len returns the number of bits.
func (bv *BitVector) Len() uint64 {
	return bv.size
}

// Empty reports whether the vector holds no bits.
func (bv *BitVector) Empty() bool {
	return bv.size == 0
}

// Cap returns the number of bits the vector can hold without reallocating.
func (bv *BitVector) Cap() uint64 {
	return uint64(cap(bv.words)) * wordBits
}

// WordLen returns the number of storage words.
func (bv *BitVector) WordLen() int {
	return len(bv.words)
}

// Words returns the storage words without copying.
//
// The slice is a read-only view for bit-level algorithms built on top of the
// vector (rank/select and the like); it is invalidated by any operation that
// grows or replaces the buffer. Bits beyond Len() in the last word are
// unspecified.
func (bv *BitVector) Words() []uint64 {
	return slices.Clip(bv.words)
}

// Test returns the bit at pos.
//
// pos must be less than Len(). The precondition is only verified in builds
// tagged bitvec_debug; use Get for a checked read.
func (bv *BitVector) Test(pos uint64) bool {
	bv.checkPos("test", pos)
	return (bv.words[pos/wordBits]>>(pos%wordBits))&1 != 0
}

// Set writes value to the bit at pos.
//
// pos must be less than Len(). The precondition is only verified in builds
// tagged bitvec_debug; use Put for a checked write.
func (bv *BitVector) Set(pos uint64, value bool) {
	bv.checkPos("set", pos)
	w := &bv.words[pos/wordBits]
	shift := pos % wordBits
	*w &^= uint64(1) << shift
	*w |= bit(value) << shift
}

// PushBack appends one bit.
func (bv *BitVector) PushBack(b bool) {
	idx := bv.size / wordBits
	if idx >= uint64(len(bv.words)) {
		bv.words = append(bv.words, 0)
	}
	shift := bv.size % wordBits
	// The target may be a tail bit left set by SetAll.
	bv.words[idx] &^= uint64(1) << shift
	bv.words[idx] |= bit(b) << shift
	bv.size++
}

// Append appends bits in order.
func (bv *BitVector) Append(bits ...bool) {
	bv.Reserve(bv.size + uint64(len(bits)))
	for _, b := range bits {
		bv.PushBack(b)
	}
}

// Reserve makes room for at least bits bits without changing Len() or any
// bit value.
func (bv *BitVector) Reserve(bits uint64) {
	n := wordsFor(bits)
	if n > cap(bv.words) {
		bv.words = slices.Grow(bv.words, n-len(bv.words))
	}
}

// Resize sets the length to bits.
//
// Growing appends zero bits. Shrinking drops whole words past the new length
// and clears the remaining bits of the last word, so positions exposed by a
// later grow or PushBack read false.
func (bv *BitVector) Resize(bits uint64) {
	bv.clearTail()
	bv.resizeWords(wordsFor(bits))
	bv.size = bits
	bv.clearTail()
}

// UnsafeResizeWords resizes the word buffer to exactly n words, zero-filling
// new words. Len() is not changed.
//
// This is a raw escape hatch: shrinking below ceil(Len()/64) words leaves the
// vector with positions that have no storage, and growing leaves words that
// PushBack will not append to. Callers must restore the invariant themselves,
// normally by calling Resize. Use Reserve or Resize instead.
func (bv *BitVector) UnsafeResizeWords(n int) {
	bv.resizeWords(n)
}

func (bv *BitVector) resizeWords(n int) {
	if n <= len(bv.words) {
		bv.words = bv.words[:n]
		return
	}
	// Explicit zeros: capacity may still hold words from an earlier shrink.
	bv.words = append(bv.words, make([]uint64, n-len(bv.words))...)
}

// clearTail zeroes the bits of the last word at positions >= Len().
func (bv *BitVector) clearTail() {
	idx := bv.size / wordBits
	if bv.size%wordBits != 0 && idx < uint64(len(bv.words)) {
		bv.words[idx] &= conv.TailMask(bv.size)
	}
}

// Clear releases the buffer and sets the length to zero.
func (bv *BitVector) Clear() {
	bv.words = nil
	bv.size = 0
}

// SetAll sets every storage word to all ones.
//
// Unlike NewFilled, the bits of the last word beyond Len() are set as well,
// so code reading Words() must not assume they are zero after this call.
func (bv *BitVector) SetAll() {
	for i := range bv.words {
		bv.words[i] = ^uint64(0)
	}
}

// Equal reports whether both vectors have the same length and identical
// storage words. Bits beyond Len() take part in the comparison, so two
// vectors with the same logical bits may differ (see SetAll).
func (bv *BitVector) Equal(other *BitVector) bool {
	if bv == other {
		return true
	}
	if bv == nil || other == nil {
		return false
	}
	return bv.size == other.size && slices.Equal(bv.words, other.words)
}

// Swap exchanges the contents of bv and other in constant time.
func (bv *BitVector) Swap(other *BitVector) {
	bv.words, other.words = other.words, bv.words
	bv.size, other.size = other.size, bv.size
}

// Clone returns a deep copy.
func (bv *BitVector) Clone() *BitVector {
	return &BitVector{
		words: slices.Clone(bv.words),
		size:  bv.size,
	}
}

// CopyFrom replaces the contents of bv with a copy of src, reusing bv's
// buffer when it is large enough.
func (bv *BitVector) CopyFrom(src *BitVector) {
	if bv == src {
		return
	}
	bv.words = append(bv.words[:0], src.words...)
	bv.size = src.size
}

// MoveFrom transfers src's buffer to bv. src is left empty and may be reused.
func (bv *BitVector) MoveFrom(src *BitVector) {
	if bv == src {
		return
	}
	bv.words, bv.size = src.words, src.size
	src.words, src.size = nil, 0
}

// String renders the bits in position order, e.g. "1011" for bits 0..3.
func (bv *BitVector) String() string {
	var sb strings.Builder
	sb.Grow(int(bv.size))
	for b := range bv.Values() {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
