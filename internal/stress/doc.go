// Package stress verifies BitVector behavior on large random workloads.
//
// A Runner executes independent rounds. Each round draws a seeded boolean
// sequence, appends it to a fresh vector bit by bit, and reads it back
// through every access path (Test, Get, ConstIterator, Values, Clone). The
// first disagreement is reported as a *MismatchError carrying the round and
// seed needed to replay it.
//
// Rounds run in parallel, each on its own vector; a vector is never shared
// between goroutines. An optional memory limit bounds the bytes held by
// in-flight rounds.
package stress
