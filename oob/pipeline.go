package oob

import (
	"github.com/akacastor/oobin/consts"
	"github.com/pkg/errors"
)

// ErrInvalidArgs is returned by ProcessChunk for the "invalid arguments"
// case the reference design leaves undefined (spec.md §7): a nil in or out
// buffer, or an out buffer too small to hold the frames a call could emit.
var ErrInvalidArgs = errors.New("oob: invalid ProcessChunk arguments")

// ProcessChunk runs the decode pipeline over in, which it mutates in place
// (de-interleave reassembly and de-randomization both write back into in;
// the reference design's buffer-mutation contract, chosen over a scratch
// buffer per SPEC_FULL.md §4.F). It writes up to len(in)/384*376 bytes of
// recovered TS payload into out, starting at out[0], and returns how many
// bytes it wrote plus how many trailing bytes of in were left unconsumed
// (the caller must re-present those as the prefix of its next read).
//
// When doFEC is false, ProcessChunk performs sync search, de-interleave,
// de-randomization and parity-stripping but never decodes or corrects an
// RS block, and never touches the Transport Error Indicator bit — FEC
// disabled means no error detection, not silent correction.
func (s *Session) ProcessChunk(in, out []byte, doFEC bool) (outLen int, remaining int, err error) {
	if in == nil || out == nil {
		return 0, 0, ErrInvalidArgs
	}

	maxFrames := len(in) / consts.FrameSize
	if len(out) < maxFrames*consts.BlocksPerFrame*consts.RSMessageSize {
		return 0, 0, ErrInvalidArgs
	}

	var scratch [consts.RSBlockSize]byte
	var uncorrectable [consts.BlocksPerFrame]bool

	i := 0
	for i+consts.FrameSize-1 < len(in) {
		k, _ := FindSync(in, i)
		next := i + k
		if next+consts.FrameSize+consts.InterleaveWindow > len(in) {
			// insufficient lookahead to de-interleave this frame; leave i
			// uncommitted so the whole unprocessed span, including the
			// bytes just skipped searching for sync, is returned as
			// residual for the caller's next chunk
			break
		}
		i = next

		for n := 0; n < consts.BlocksPerFrame; n++ {
			off := i + consts.RSBlockSize*n
			Deinterleave(in[off:off+consts.InterleaveWindow], scratch[:])
			copy(in[off:off+consts.RSBlockSize], scratch[:])
		}

		for n := range uncorrectable {
			uncorrectable[n] = false
		}
		if doFEC {
			for n := 0; n < consts.BlocksPerFrame; n++ {
				off := i + consts.RSBlockSize*n
				block := in[off : off+consts.RSBlockSize]

				s.stats.BlocksTotal++
				if s.codec.Decode(block).IsZero() {
					continue
				}
				s.stats.BlocksError++
				if err := s.codec.Correct(block, nil); err != nil {
					uncorrectable[n] = true
					continue
				}
				if s.codec.Decode(block).IsZero() {
					s.stats.BlocksCorrected++
				} else {
					uncorrectable[n] = true
				}
			}
		}

		Derandomize(in[i:i+consts.FrameSize], 0)

		if doFEC {
			for p := 0; p < consts.BlocksPerTSPacket; p++ {
				if uncorrectable[2*p] || uncorrectable[2*p+1] {
					in[i+consts.SecondPacketOffset*p+1] |= 0x80
				}
			}
		}

		for n := 0; n < consts.BlocksPerFrame; n++ {
			off := i + consts.RSBlockSize*n
			copy(out[outLen:outLen+consts.RSMessageSize], in[off:off+consts.RSMessageSize])
			outLen += consts.RSMessageSize
		}

		i += consts.FrameSize
	}

	if rem := len(in) - i; rem > 0 {
		copy(in[0:rem], in[i:])
		return outLen, rem, nil
	}
	return outLen, 0, nil
}
