// internal/statapp/app.go
package statapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"pbxplore/internal/count"
	"pbxplore/internal/neq"
	"pbxplore/internal/statcli"
	"pbxplore/internal/version"
	"pbxplore/internal/writers"
)

// RunContext drives pbstat: read a count table, compute the Neq series,
// optionally restrict it to an inclusive position window, and write it.
// Exit codes: 0 ok, 2 usage, input, or range error, 3 write error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := statcli.NewFlagSet("pbstat")
	fs.SetOutput(io.Discard)

	opts, err := statcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "pbstat version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	m, err := readCounts(opts.CountFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	restrict := opts.ResidueMin != 0 || opts.ResidueMax != 0
	lo, hi := opts.ResidueMin, opts.ResidueMax
	if restrict {
		first, last := m.Offset(), m.Offset()+m.Len()-1
		if lo == 0 {
			lo = first
		}
		if hi == 0 {
			hi = last
		}
		// Reject a window outside the matrix before computing anything.
		if err := neq.CheckRange(first, last, lo, hi); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	series := neq.Compute(m)
	if restrict {
		series, err = neq.Restrict(series, lo, hi)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	if err := writers.WriteNeq(outw, opts.Output, series); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr)
}

func readCounts(path string) (*count.Matrix, error) {
	if path == "-" {
		return count.Read(os.Stdin)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	m, err := count.Read(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
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
