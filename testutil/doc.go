// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source for boolean sequences and small
// helpers for rendering expected results.
//
// # Random Bit Sequences
//
//	rng := testutil.NewRNG(seed)
//	bits := rng.Bools(10000, 0.5) // independent bits, P(true) = 0.5
//	runs := rng.Runs(10000, 130)  // alternating runs crossing word boundaries
//
// # Rendering
//
//	testutil.BitString(bits) // "0110..." in position order
package testutil
