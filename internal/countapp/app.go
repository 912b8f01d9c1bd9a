// internal/countapp/app.go
package countapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pbxplore/internal/count"
	"pbxplore/internal/countcli"
	"pbxplore/internal/fasta"
	"pbxplore/internal/pb"
	"pbxplore/internal/version"
	"pbxplore/internal/writers"
)

// RunContext drives pbcount: read PB fasta files, fold each file into a
// count matrix, merge the per-file matrices, and write the result. Each
// input file is an independent source; sources with a different sequence
// length than the first one fail the merge instead of being truncated.
// Exit codes: 0 ok, 1 incompatible sources, 2 usage or input error,
// 3 write error.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := countcli.NewFlagSet("pbcount")
	fs.SetOutput(io.Discard)

	opts, err := countcli.ParseArgs(fs, argv)
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
		_, _ = fmt.Fprintf(outw, "pbcount version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	var total *count.Matrix
	for _, path := range opts.FastaFiles {
		m, err := countFile(path, opts.FirstPosition)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
		if total == nil {
			total = m
			continue
		}
		if err := total.Merge(m); err != nil {
			_, _ = fmt.Fprintf(stderr, "pbcount: cannot merge %s: %v\n", path, err)
			return 1
		}
	}

	if err := writers.WriteCounts(outw, opts.Output, opts.ID, total); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return flushCode(outw, stderr)
}

// countFile folds every sequence of one fasta file into a fresh matrix.
func countFile(path string, firstPos int) (*count.Matrix, error) {
	recs, err := fasta.ReadFiles([]string{path})
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: no sequences found", path)
	}
	m := count.NewOffset(len(recs[0].Seq), firstPos)
	for _, rec := range recs {
		seq, err := pb.ParseSequence(rec.Seq)
		if err != nil {
			return nil, fmt.Errorf("%s: %q: %w", path, rec.Header, err)
		}
		if err := m.Fold(seq); err != nil {
			return nil, fmt.Errorf("%s: %q: %w", path, rec.Header, err)
		}
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
