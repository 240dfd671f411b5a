package oob

import "github.com/akacastor/oobin/consts"

// Deinterleave reassembles one 96-byte RS block from a 768-byte sliding
// window of depth-8 convolutionally interleaved input. For lane i in
// [0, 8) and column n in [0, 12): out[8*n+i] = in[8*n+i+96*i]. Lane 0
// reads from the start of the window; lane 7 reads from 96*7 = 672 bytes
// into it.
//
// in must have length >= consts.InterleaveWindow (768); out must have
// length >= consts.RSBlockSize (96).
func Deinterleave(in, out []byte) {
	const lanes = consts.InterleaveDepth
	const cols = consts.RSBlockSize / lanes

	for i := 0; i < lanes; i++ {
		laneOffset := consts.RSBlockSize * i
		for n := 0; n < cols; n++ {
			out[lanes*n+i] = in[lanes*n+i+laneOffset]
		}
	}
}

// Interleaver is the forward (encode-side), depth-8 byte convolutional
// interleaver: the exact inverse of Deinterleave, built the same way the
// teacher builds its own encode-side Forney interleaver (one FIFO delay
// line per lane, lane i delayed by i*M bytes, a commutator cycling across
// lanes every byte). It exists only to build round-trip fixtures for
// tests; the decode path never constructs one.
type Interleaver struct {
	fifos   [][]byte
	indices []int
}

// NewInterleaver returns a fresh forward interleaver with all delay lines
// zeroed.
func NewInterleaver() *Interleaver {
	const lanes = consts.InterleaveDepth
	const cols = consts.RSBlockSize / lanes

	fifos := make([][]byte, lanes)
	for i := 1; i < lanes; i++ {
		fifos[i] = make([]byte, i*cols)
	}
	return &Interleaver{
		fifos:   fifos,
		indices: make([]int, lanes),
	}
}

// Push feeds one 96-byte RS block through the interleaver and returns the
// next 96 bytes of interleaved output. Output lags input by the pipeline's
// delay-line depth; InterleaveDepth-1 trailing flush blocks must be pushed
// after the last real block before the interleaved stream carries enough
// lookahead for Deinterleave to recover it.
func (il *Interleaver) Push(block []byte) []byte {
	const lanes = consts.InterleaveDepth

	out := make([]byte, consts.RSBlockSize)
	copy(out, block)

	p := 0
	for p < consts.RSBlockSize {
		p++ // lane 0: no delay, byte passes straight through
		for i := 1; i < lanes && p < consts.RSBlockSize; i++ {
			fifo := il.fifos[i]
			idx := il.indices[i]
			out[p], fifo[idx] = fifo[idx], out[p]
			il.indices[i] = (idx + 1) % len(fifo)
			p++
		}
	}
	return out
}
