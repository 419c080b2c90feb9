// Package conv provides checked integer conversions and word arithmetic
// for 64-bit packed storage.
package conv
