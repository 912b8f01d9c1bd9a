// internal/assignapp/app.go
package assignapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pbxplore/internal/assigncli"
	"pbxplore/internal/dihedral"
	"pbxplore/internal/fasta"
	"pbxplore/internal/pb"
	"pbxplore/internal/pipeline"
	"pbxplore/internal/version"
	"pbxplore/internal/writers"
)

// RunContext drives pbassign: read phi-psi tables, classify every frame
// against the standard library in parallel, and stream one PB sequence per
// frame to stdout. Exit codes: 0 ok, 1 pipeline failure, 2 usage or input
// error, 3 write error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := assigncli.NewFlagSet("pbassign")
	fs.SetOutput(io.Discard)

	opts, err := assigncli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		if c := flushCode(outw, stderr); c != 0 {
			return c
		}
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "pbassign version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	frames, err := dihedral.ReadTableFiles(opts.PhiPsiFiles)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	if len(frames) == 0 {
		_, _ = fmt.Fprintln(stderr, "pbassign: no frames found in input")
		return 1
	}

	lib := pb.Standard()
	inCh, writeErr := writers.StartSequenceWriter(outw, opts.Output, 64)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	perr := pipeline.ForEachSequence(ctx,
		pipeline.Config{Threads: opts.Threads},
		frames, lib,
		func(r pipeline.Result) error {
			select {
			case inCh <- fasta.Record{Header: r.ID, Seq: r.Seq.String()}:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	close(inCh)
	werr := <-writeErr

	if perr != nil {
		_, _ = fmt.Fprintln(stderr, perr)
		return 1
	}
	if werr != nil {
		if writers.IsBrokenPipe(werr) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, werr)
		return 3
	}
	return flushCode(outw, stderr)
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func flushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
