// internal/fasta/fasta.go

// Package fasta reads and writes PB sequence files: fasta records whose
// sequences run over the letters a..p plus Z for unclassifiable positions.
package fasta

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"
)

// Width is the column at which sequences wrap on output.
const Width = 60

// Record is one header + sequence pair.
type Record struct {
	Header string
	Seq    string
}

// Read parses fasta records, joining wrapped sequence lines. Records with an
// empty sequence or a missing header are rejected.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	var recs []Record
	var header string
	var seq strings.Builder
	sawHeader := false

	flush := func() error {
		if !sawHeader {
			return nil
		}
		if seq.Len() == 0 {
			return fmt.Errorf("fasta: record %q has no sequence", header)
		}
		recs = append(recs, Record{Header: header, Seq: seq.String()})
		seq.Reset()
		return nil
	}

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return nil, err
			}
			header = strings.TrimSpace(line[1:])
			sawHeader = true
			continue
		}
		if !sawHeader {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		seq.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return recs, nil
}

// ReadFiles reads records from several fasta files in order. "-" reads
// stdin; gzip input is detected by magic number or .gz suffix.
func ReadFiles(paths []string) ([]Record, error) {
	var all []Record
	for _, p := range paths {
		rc, err := open(p)
		if err != nil {
			return nil, err
		}
		recs, err := Read(rc)
		cerr := rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if cerr != nil {
			return nil, cerr
		}
		all = append(all, recs...)
	}
	return all, nil
}

// WriteEntry writes one record, wrapping the sequence at Width columns.
func WriteEntry(w io.Writer, header, seq string) error {
	if _, err := fmt.Fprintf(w, ">%s\n", header); err != nil {
		return err
	}
	for len(seq) > Width {
		if _, err := fmt.Fprintln(w, seq[:Width]); err != nil {
			return err
		}
		seq = seq[Width:]
	}
	_, err := fmt.Fprintln(w, seq)
	return err
}

// Write writes all records via WriteEntry.
func Write(w io.Writer, recs []Record) error {
	for _, rec := range recs {
		if err := WriteEntry(w, rec.Header, rec.Seq); err != nil {
			return err
		}
	}
	return nil
}

// WriteFlat writes one raw sequence per line, without headers or wrapping.
func WriteFlat(w io.Writer, seqs []string) error {
	for _, s := range seqs {
		if _, err := fmt.Fprintln(w, s); err != nil {
			return err
		}
	}
	return nil
}

type gzReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (g *gzReadCloser) Close() error {
	var err error
	for _, c := range g.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &gzReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}
