package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStressCommand(t *testing.T) {
	out, err := runCommand(t, "stress", "--log-level", "error", "--bits", "10000", "--rounds", "3", "--seed", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "OK: 3 rounds x 10000 bits verified (seed 7)")
}

func TestStressCommand_JSON(t *testing.T) {
	out, err := runCommand(t, "stress", "--json", "--log-format", "json", "--log-level", "error",
		"--bits", "100", "--rounds", "2", "--parallel", "2", "--seed", "1", "--max-run", "10")
	require.NoError(t, err)

	var report stressReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.Rounds)
	assert.Equal(t, int64(200), report.BitsVerified)
}

func TestStressCommand_InvalidConfig(t *testing.T) {
	_, err := runCommand(t, "stress", "--log-level", "error", "--density", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "density")
}

func TestStressCommand_InvalidLogLevel(t *testing.T) {
	_, err := runCommand(t, "stress", "--log-level", "loud", "--density", "0.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--log-level")
}
