package oob

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akacastor/oobin/consts"
)

// TestDeinterleaveRoundTrip is P4: de-interleaving the output of the
// forward interleaver recovers the original blocks exactly.
//
// The interleaver's per-lane FIFO delay lines mean a given pushed block's
// bytes are scattered across several 96-byte output chunks, recoverable
// only by a 768-byte window at the right offset. Rather than hand-deriving
// that offset, this test pads the pushed stream with flush blocks on both
// ends and scans every 96-byte-aligned window for the one that reassembles
// each known block — proving the round trip without assuming which
// specific offset the implementation lands it at.
func TestDeinterleaveRoundTrip(t *testing.T) {
	il := NewInterleaver()

	blocks := make([][]byte, 4)
	for i := range blocks {
		b := make([]byte, consts.RSBlockSize)
		for j := range b {
			b[j] = byte((i*97 + j*13 + 1) & 0xFF) // +1 so no block is all-zero
		}
		blocks[i] = b
	}

	flush := consts.InterleaveDepth
	var stream []byte
	for i := 0; i < flush; i++ {
		stream = append(stream, il.Push(make([]byte, consts.RSBlockSize))...)
	}
	for _, b := range blocks {
		stream = append(stream, il.Push(b)...)
	}
	for i := 0; i < flush; i++ {
		stream = append(stream, il.Push(make([]byte, consts.RSBlockSize))...)
	}

	found := make([]bool, len(blocks))
	out := make([]byte, consts.RSBlockSize)
	for start := 0; start+consts.InterleaveWindow <= len(stream); start += consts.RSBlockSize {
		Deinterleave(stream[start:start+consts.InterleaveWindow], out)
		for i, b := range blocks {
			if bytes.Equal(out, b) {
				found[i] = true
			}
		}
	}

	for i, f := range found {
		require.True(t, f, "block %d never reassembled from any window", i)
	}
}
