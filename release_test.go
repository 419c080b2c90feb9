//go:build !bitvec_debug

package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugAssertionsDisabled(t *testing.T) {
	assert.False(t, DebugAssertions())
}
