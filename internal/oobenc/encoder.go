// Package oobenc is a test-only encoder for the CableLabs OOB downstream
// FEC framing: the inverse of the oob package's decode pipeline. It exists
// to build round-trip fixtures for tests and is never imported by the
// decode path.
package oobenc

import (
	"github.com/akacastor/oobin/consts"
	"github.com/akacastor/oobin/internal/rs"
	"github.com/akacastor/oobin/oob"
)

// Encoder builds the raw, interleaved byte stream a QPSK demodulator would
// deliver for a given sequence of clear TS packets.
type Encoder struct {
	codec *rs.Codec
	il    *oob.Interleaver
}

// NewEncoder returns a fresh Encoder with a zeroed interleaver delay line.
func NewEncoder() *Encoder {
	return &Encoder{
		codec: rs.New(),
		il:    oob.NewInterleaver(),
	}
}

// BuildBlocks turns pairs of 188-byte TS packets into the pre-interleave
// domain: one 96-byte RS(96,94) codeword per half-packet, laid out in the
// same order the decoder's de-interleaver recovers them in, followed by
// InterleaveDepth trailing flush blocks — one full interleaver window's
// worth — so the last frame satisfies ProcessChunk's lookahead margin once
// the blocks are pushed through Encoder.Interleave.
//
// tsPackets must have an even length; consecutive pairs form one OOB
// frame. The returned slice's blocks may be mutated by the caller (e.g. to
// flip a byte for a corruption test) before being passed to Interleave.
func (e *Encoder) BuildBlocks(tsPackets [][]byte) [][]byte {
	var blocks [][]byte

	for i := 0; i+1 < len(tsPackets); i += 2 {
		frame := make([]byte, consts.FrameSize)
		copy(frame[0:94], tsPackets[i][0:94])
		copy(frame[96:190], tsPackets[i][94:188])
		copy(frame[192:286], tsPackets[i+1][0:94])
		copy(frame[288:382], tsPackets[i+1][94:188])

		// randomize the systematic bytes before RS-encoding, so the
		// parity the decoder checks matches what it sees pre-derandomize
		oob.Derandomize(frame, 0)

		for n := 0; n < consts.BlocksPerFrame; n++ {
			off := n * consts.RSBlockSize
			encoded := e.codec.Encode(frame[off : off+consts.RSMessageSize])
			blocks = append(blocks, encoded)
		}
	}

	flush := consts.InterleaveDepth
	for i := 0; i < flush; i++ {
		blocks = append(blocks, make([]byte, consts.RSBlockSize))
	}
	return blocks
}

// Interleave pushes blocks (as returned by BuildBlocks, possibly
// corrupted) through the encoder's depth-8 convolutional interleaver in
// order and returns the concatenated raw byte stream.
func (e *Encoder) Interleave(blocks [][]byte) []byte {
	out := make([]byte, 0, len(blocks)*consts.RSBlockSize)
	for _, b := range blocks {
		out = append(out, e.il.Push(b)...)
	}
	return out
}

// EncodeStream is the common case: build and interleave in one call, with
// no corruption applied.
func (e *Encoder) EncodeStream(tsPackets [][]byte) []byte {
	return e.Interleave(e.BuildBlocks(tsPackets))
}
