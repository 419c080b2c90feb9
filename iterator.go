package bitvec

import "iter"

// cursor is the position logic shared by ConstIterator and Iterator.
type cursor struct {
	bv  *BitVector
	pos uint64
}

// Next advances by one position.
func (c *cursor) Next() {
	c.pos++
}

// Advance moves forward by n positions.
func (c *cursor) Advance(n uint64) {
	c.pos += n
}

// Pos returns the current position.
func (c cursor) Pos() uint64 {
	return c.pos
}

// Valid reports whether the cursor points at a bit, i.e. Pos() < Len().
func (c cursor) Valid() bool {
	return c.pos < c.bv.size
}

// ConstIterator walks a BitVector yielding bit values.
type ConstIterator struct {
	cursor
}

// Value returns the bit at the current position.
func (it ConstIterator) Value() bool {
	return it.bv.Test(it.pos)
}

// Equal compares positions. Both iterators must walk the same vector.
func (it ConstIterator) Equal(other ConstIterator) bool {
	return it.pos == other.pos
}

// Iterator walks a BitVector yielding References, so bits can be read and
// written in the same pass.
type Iterator struct {
	cursor
}

// Ref returns a Reference to the bit at the current position.
func (it Iterator) Ref() Reference {
	return Reference{bv: it.bv, pos: it.pos}
}

// Value returns the bit at the current position.
func (it Iterator) Value() bool {
	return it.bv.Test(it.pos)
}

// Set writes value to the bit at the current position.
func (it Iterator) Set(value bool) {
	it.bv.Set(it.pos, value)
}

// Equal compares positions. Both iterators must walk the same vector.
func (it Iterator) Equal(other Iterator) bool {
	return it.pos == other.pos
}

// ConstIter returns a read-only iterator at position 0.
func (bv *BitVector) ConstIter() ConstIterator {
	return bv.ConstIterAt(0)
}

// ConstIterAt returns a read-only iterator at pos.
func (bv *BitVector) ConstIterAt(pos uint64) ConstIterator {
	return ConstIterator{cursor{bv: bv, pos: pos}}
}

// ConstEnd returns the read-only iterator one past the last bit.
func (bv *BitVector) ConstEnd() ConstIterator {
	return bv.ConstIterAt(bv.size)
}

// Iter returns a mutable iterator at position 0.
func (bv *BitVector) Iter() Iterator {
	return bv.IterAt(0)
}

// IterAt returns a mutable iterator at pos.
func (bv *BitVector) IterAt(pos uint64) Iterator {
	return Iterator{cursor{bv: bv, pos: pos}}
}

// End returns the mutable iterator one past the last bit.
func (bv *BitVector) End() Iterator {
	return bv.IterAt(bv.size)
}

// All returns an iterator over (position, bit) pairs in position order.
// The end is fixed when iteration starts; growing or shrinking the vector
// while ranging is not supported.
func (bv *BitVector) All() iter.Seq2[uint64, bool] {
	return func(yield func(uint64, bool) bool) {
		end := bv.ConstEnd()
		for it := bv.ConstIter(); !it.Equal(end); it.Next() {
			if !yield(it.Pos(), it.Value()) {
				return
			}
		}
	}
}

// Values returns an iterator over the bits in position order.
func (bv *BitVector) Values() iter.Seq[bool] {
	return func(yield func(bool) bool) {
		end := bv.ConstEnd()
		for it := bv.ConstIter(); !it.Equal(end); it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Refs returns an iterator over (position, Reference) pairs, allowing the
// loop body to write bits in place.
//
//	for _, ref := range bv.Refs() {
//		ref.Flip()
//	}
func (bv *BitVector) Refs() iter.Seq2[uint64, Reference] {
	return func(yield func(uint64, Reference) bool) {
		end := bv.End()
		for it := bv.Iter(); !it.Equal(end); it.Next() {
			if !yield(it.Pos(), it.Ref()) {
				return
			}
		}
	}
}
