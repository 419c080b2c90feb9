//go:build !bitvec_debug

package bitvec

const debugAssertions = false
