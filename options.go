package bitvec

type options struct {
	capacity uint64
}

// Option configures New.
type Option func(*options)

// WithCapacity pre-allocates room for at least bits bits.
//
// It is a pure performance hint with the same effect as calling Reserve
// right after construction; the vector is still empty.
func WithCapacity(bits uint64) Option {
	return func(o *options) {
		o.capacity = bits
	}
}
