package bitvec

func (bv *BitVector) rangeError(op string, pos uint64) error {
	return &ErrIndexOutOfRange{Op: op, Index: pos, Len: bv.size}
}

// Get returns the bit at pos, or an *ErrIndexOutOfRange if pos >= Len().
func (bv *BitVector) Get(pos uint64) (bool, error) {
	if pos >= bv.size {
		return false, bv.rangeError("get", pos)
	}
	return bv.Test(pos), nil
}

// Put writes value to the bit at pos, or returns an *ErrIndexOutOfRange if
// pos >= Len().
func (bv *BitVector) Put(pos uint64, value bool) error {
	if pos >= bv.size {
		return bv.rangeError("put", pos)
	}
	bv.Set(pos, value)
	return nil
}

// Ref returns a Reference to the bit at pos, or an *ErrIndexOutOfRange if
// pos >= Len().
func (bv *BitVector) Ref(pos uint64) (Reference, error) {
	if pos >= bv.size {
		return Reference{}, bv.rangeError("ref", pos)
	}
	return bv.At(pos), nil
}
