package bitvec

import "context"

// DebugAssertions reports whether unchecked accessors verify their
// position precondition. It is true only in builds tagged bitvec_debug.
func DebugAssertions() bool {
	return debugAssertions
}

// checkPos compiles to nothing unless built with the bitvec_debug tag.
func (bv *BitVector) checkPos(op string, pos uint64) {
	if debugAssertions && pos >= bv.size {
		err := &ErrIndexOutOfRange{Op: op, Index: pos, Len: bv.size}
		currentLogger().LogViolation(context.Background(), err)
		panic(err)
	}
}
