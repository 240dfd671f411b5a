package oob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeRandTableMatchesConstant is P1: the LFSR generator must
// reproduce RandTable byte-for-byte.
func TestComputeRandTableMatchesConstant(t *testing.T) {
	got, err := ComputeRandTable()
	require.NoError(t, err)
	assert.Equal(t, RandTable, got)
}

// TestSyncAnchorInvariant asserts the derived invariant noted in spec.md
// §9: R[192] XOR 0x47 must equal 0x64, the second-packet sync byte
// FindSync relies on before de-randomization.
func TestSyncAnchorInvariant(t *testing.T) {
	assert.Equal(t, byte(0x64), RandTable[192]^0x47)
}
