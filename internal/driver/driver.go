// Package driver implements the stream driver spec.md treats as an
// external collaborator (§2 row H): it owns I/O, chunking and the
// residual-byte bookkeeping loop around one oob.Session, the way the
// teacher's main.go owns sample generation and device I/O around its
// DVB-S encoder.
package driver

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/akacastor/oobin/consts"
	"github.com/akacastor/oobin/oob"
)

// readUnit is the unit spec.md's CLI chunk-size flag counts in: one
// interleaver window.
const readUnit = 768

// outUnit is the number of TS payload bytes one readUnit of input can
// yield: two 384-byte frames per 768-byte window, four 94-byte emissions
// per frame (768/384*4*94 = 752).
const outUnit = 752

// minChunkSize is the smallest ChunkSize that can ever make progress: a
// buffer of fewer than FrameSize+InterleaveWindow bytes can never satisfy
// ProcessChunk's lookahead check for even one frame, so it would fill with
// residual on the first call and never shrink again.
const minChunkSize = (consts.FrameSize + consts.InterleaveWindow + readUnit - 1) / readUnit

// Driver reads raw OOB bytes from In, decodes them through Session, and
// writes recovered TS bytes to Out. ChunkSize is measured in readUnit
// (768-byte) blocks, matching the CLI's -b/--blocks flag.
type Driver struct {
	In        io.Reader
	Out       io.Writer
	ChunkSize int
	DoFEC     bool
	Session   *oob.Session
	Log       *log.Logger
}

// Run reads from In until EOF, decoding and writing as it goes, and
// returns when the input is exhausted or ctx is cancelled. A cancellation
// takes effect between chunks; output already written is never lost.
func (d *Driver) Run(ctx context.Context) error {
	if d.ChunkSize < minChunkSize {
		return errors.Errorf("driver: ChunkSize must be at least %d (got %d)", minChunkSize, d.ChunkSize)
	}

	inBuf := make([]byte, d.ChunkSize*readUnit)
	outBuf := make([]byte, d.ChunkSize*outUnit)

	remaining := 0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, readErr := io.ReadFull(d.In, inBuf[remaining:])
		filled := remaining + n
		if readErr != nil && readErr != io.ErrUnexpectedEOF && readErr != io.EOF {
			return errors.Wrap(readErr, "driver: read input")
		}

		outLen, rem, err := d.Session.ProcessChunk(inBuf[:filled], outBuf, d.DoFEC)
		if err != nil {
			return errors.Wrap(err, "driver: process chunk")
		}

		if rem == len(inBuf) && readErr == nil {
			// the whole full buffer came back as residual with no frame
			// consumed: inBuf[remaining:] is now empty, so the next
			// ReadFull would return (0, nil) without ever reaching io.EOF
			// and this loop would spin forever reprocessing the same bytes
			return errors.New("driver: no frame boundary found in a full chunk")
		}
		remaining = rem

		if outLen > 0 {
			if _, err := d.Out.Write(outBuf[:outLen]); err != nil {
				return errors.Wrap(err, "driver: write output")
			}
		}

		if d.Log != nil {
			d.Log.Debug("chunk processed", "read", n, "emitted", outLen, "residual", remaining)
		}

		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			return nil
		}
	}
}
