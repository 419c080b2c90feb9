package testutil

import (
	"math/rand"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Bool returns true with probability density.
func (r *RNG) Bool(density float64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64() < density
}

// Bools generates n independent bits, each true with probability density.
// Locks only once per call (preferred over calling Bool in a loop).
func (r *RNG) Bools(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	bits := make([]bool, n)
	for i := range n {
		bits[i] = r.rand.Float64() < density
	}

	return bits
}

// Runs generates n bits as alternating runs of equal values with random
// lengths in [1, maxRun]. Long runs exercise word boundaries and partial
// trailing words better than independent bits do.
func (r *RNG) Runs(n, maxRun int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	bits := make([]bool, 0, n)
	value := r.rand.Intn(2) == 1
	for len(bits) < n {
		run := min(1+r.rand.Intn(maxRun), n-len(bits))
		for range run {
			bits = append(bits, value)
		}
		value = !value
	}

	return bits
}

// BitString renders bits in position order as '0' and '1'.
func BitString(bits []bool) string {
	var sb strings.Builder
	sb.Grow(len(bits))
	for _, b := range bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Positions returns the indexes of the true entries of bits.
func Positions(bits []bool) []uint64 {
	var out []uint64
	for i, b := range bits {
		if b {
			out = append(out, uint64(i))
		}
	}
	return out
}
