// internal/dihedral/reader.go
package dihedral

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Missing is the literal used for an unmeasurable torsion in phi-psi tables.
const Missing = "None"

// ReadTable parses a phi-psi table: one residue per line,
//
//	<frame-id> <resid> <phi|None> <psi|None>
//
// where <frame-id> may itself contain spaces. Consecutive lines sharing a
// frame id form one frame; blank lines and lines starting with '#' are
// skipped. Residues are expected in increasing number order within a frame.
func ReadTable(r io.Reader) ([]Frame, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	var frames []Frame
	var cur *Frame
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, fmt.Errorf("phi-psi table line %d: want at least 4 fields, got %d", lineNo, len(fields))
		}
		id := strings.Join(fields[:len(fields)-3], " ")
		res, err := parseResidue(fields[len(fields)-3:])
		if err != nil {
			return nil, fmt.Errorf("phi-psi table line %d: %w", lineNo, err)
		}
		if cur == nil || cur.ID != id {
			frames = append(frames, Frame{ID: id})
			cur = &frames[len(frames)-1]
		}
		cur.Residues = append(cur.Residues, res)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return frames, nil
}

func parseResidue(fields []string) (Residue, error) {
	var res Residue
	num, err := strconv.Atoi(fields[0])
	if err != nil {
		return res, fmt.Errorf("bad residue number %q", fields[0])
	}
	res.Num = num
	if fields[1] != Missing {
		res.Phi, err = strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return res, fmt.Errorf("bad phi %q", fields[1])
		}
		res.HasPhi = true
	}
	if fields[2] != Missing {
		res.Psi, err = strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return res, fmt.Errorf("bad psi %q", fields[2])
		}
		res.HasPsi = true
	}
	return res, nil
}

// ReadTableFiles reads and concatenates frames from several table files.
// "-" reads stdin; gzip input is detected by magic number or .gz suffix.
func ReadTableFiles(paths []string) ([]Frame, error) {
	var all []Frame
	for _, p := range paths {
		rc, err := openReader(p)
		if err != nil {
			return nil, err
		}
		frames, err := ReadTable(rc)
		cerr := rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		if cerr != nil {
			return nil, cerr
		}
		all = append(all, frames...)
	}
	return all, nil
}

type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

func openReader(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	// Detect gzip by magic number (1F 8B) or by .gz suffix.
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// WriteTable writes frames back out in the phi-psi table format.
func WriteTable(w io.Writer, frames []Frame) error {
	for i := range frames {
		f := &frames[i]
		for _, r := range f.Residues {
			phi, psi := "    "+Missing, "    "+Missing
			if r.HasPhi {
				phi = fmt.Sprintf("%8.2f", r.Phi)
			}
			if r.HasPsi {
				psi = fmt.Sprintf("%8.2f", r.Psi)
			}
			if _, err := fmt.Fprintf(w, "%s %6d %s %s \n", f.ID, r.Num, phi, psi); err != nil {
				return err
			}
		}
	}
	return nil
}
