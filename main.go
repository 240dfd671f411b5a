package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/akacastor/oobin/internal/driver"
	"github.com/akacastor/oobin/oob"
	"github.com/akacastor/oobin/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.New(os.Stderr)

	flags := pflag.NewFlagSet("oobin", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: oobin [options]\n\n")
		fmt.Fprintf(os.Stderr, "Decodes a CableLabs OOB downstream FEC byte stream into MPEG-2 TS.\n\n")
		flags.PrintDefaults()
	}

	filePath := flags.StringP("file", "f", "-", "Input file path, - for stdin.")
	writePath := flags.StringP("write", "w", "-", "Output file path, - for stdout.")
	blocks := flags.IntP("blocks", "b", 100, "Number of 768-byte blocks read per chunk.")
	fec := flags.BoolP("fec", "e", false, "Enable RS(96,94) FEC check/repair.")
	help := flags.Bool("help", false, "Display help text.")

	// ContinueOnError keeps a malformed flag a usage error (exit 1) instead
	// of letting pflag's default ExitOnError FlagSet print and os.Exit(2)
	// before this function's own exit-code logic runs.
	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return 0
		}
		logger.Error("invalid arguments", "err", err)
		return 1
	}

	if *help {
		flags.Usage()
		return 0
	}
	if *blocks <= 0 {
		logger.Error("invalid --blocks value, must be positive", "blocks", *blocks)
		return 1
	}

	in, out, err := openStreams(*filePath, *writePath)
	if err != nil {
		logger.Error("failed to open streams", "err", err)
		return 2
	}
	defer closeIfFile(in)
	defer closeIfFile(out)

	logger.Info("starting oob decode", "file", *filePath, "write", *writePath, "blocks", *blocks, "fec", *fec)

	ctx, stop := utils.WithSignalCancel(context.Background())
	defer stop()

	session := oob.NewSession()
	d := &driver.Driver{
		In:        in,
		Out:       out,
		ChunkSize: *blocks,
		DoFEC:     *fec,
		Session:   session,
		Log:       logger,
	}

	if err := d.Run(ctx); err != nil {
		logger.Error("decode failed", "err", err)
		return 2
	}

	if *fec {
		stats := session.Stats()
		logger.Info("FEC summary",
			"blocks_total", stats.BlocksTotal,
			"blocks_error", stats.BlocksError,
			"blocks_corrected", stats.BlocksCorrected,
		)
	}
	return 0
}

func openStreams(filePath, writePath string) (io.Reader, io.Writer, error) {
	var in io.Reader = os.Stdin
	if filePath != "-" {
		f, err := os.Open(filePath)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open input %q", filePath)
		}
		in = f
	}

	var out io.Writer = os.Stdout
	if writePath != "-" {
		f, err := os.Create(writePath)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "open output %q", writePath)
		}
		out = f
	}

	return in, out, nil
}

func closeIfFile(v interface{}) {
	if c, ok := v.(io.Closer); ok {
		c.Close()
	}
}
