package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBits(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"empty", "", "", false},
		{"simple", "1011", "1011", false},
		{"separators", "1111_0000 1010", "111100001010", false},
		{"invalid", "10x1", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bv, err := parseBits(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, bv.String())
		})
	}
}

func TestRunLayout(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runLayout(&buf, "1011"))

	out := buf.String()
	assert.Contains(t, out, "len:  4")
	assert.Contains(t, out, "bits: 1011")
	assert.Contains(t, out, "word 0 (positions 0..63): 0x000000000000000d")
	assert.Contains(t, out, strings.Repeat("0", 60)+"1101")
}

func TestRunLayout_MultiWord(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runLayout(&buf, strings.Repeat("0", 64)+"1"))

	out := buf.String()
	assert.Contains(t, out, "word 0 (positions 0..63): 0x0000000000000000")
	assert.Contains(t, out, "word 1 (positions 64..127): 0x0000000000000001")
}

func TestLayoutCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "layout", "--json", "0000_0001")
	require.NoError(t, err)

	var report layoutReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, uint64(8), report.Len)
	require.Len(t, report.Words, 1)
	assert.Equal(t, "0x0000000000000080", report.Words[0].Hex)
}

func TestLayoutCommand_Invalid(t *testing.T) {
	_, err := runCommand(t, "layout", "012")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid character")
}
