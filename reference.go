package bitvec

// Reference is a handle to one bit of a BitVector, standing in for an
// addressable element. It holds the vector and a position and performs no
// work until used; every Set writes through immediately.
//
// A Reference must not outlive operations that shrink or replace the
// vector's buffer.
type Reference struct {
	bv  *BitVector
	pos uint64
}

// At returns a Reference to the bit at pos. pos must be less than Len()
// when the reference is read or written; use Ref for a checked handle.
func (bv *BitVector) At(pos uint64) Reference {
	return Reference{bv: bv, pos: pos}
}

// Pos returns the referenced position.
func (r Reference) Pos() uint64 {
	return r.pos
}

// Get reads the referenced bit.
func (r Reference) Get() bool {
	return r.bv.Test(r.pos)
}

// Set writes value to the referenced bit.
func (r Reference) Set(value bool) Reference {
	r.bv.Set(r.pos, value)
	return r
}

// Assign copies the bit referenced by other into the bit referenced by r.
func (r Reference) Assign(other Reference) Reference {
	return r.Set(other.Get())
}

// Flip negates the referenced bit.
func (r Reference) Flip() Reference {
	return r.Set(!r.Get())
}
