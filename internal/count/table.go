// internal/count/table.go
package count

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pbxplore/internal/pb"
)

// Write renders the matrix in the fixed-width count-table layout: a header
// row of the sixteen letters, then one row per position with the position
// number first.
func Write(w io.Writer, m *Matrix) error {
	var sb strings.Builder
	sb.WriteString("    ")
	for b := 0; b < pb.NumBlocks; b++ {
		fmt.Fprintf(&sb, "%6c", pb.Letters[b])
	}
	sb.WriteByte('\n')
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return err
	}
	for i := range m.rows {
		sb.Reset()
		fmt.Fprintf(&sb, "%-5d", i+m.offset)
		for b := 0; b < pb.NumBlocks; b++ {
			if b > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%5d", m.rows[i][b])
		}
		sb.WriteByte('\n')
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// Read parses a count table written by Write. The header must list the
// sixteen letters in canonical order; position numbers must be contiguous.
func Read(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("count table: empty input")
	}
	header := strings.Fields(sc.Text())
	if len(header) != pb.NumBlocks {
		return nil, fmt.Errorf("count table: header has %d columns, want %d", len(header), pb.NumBlocks)
	}
	for b, col := range header {
		if col != string(pb.Letters[b]) {
			return nil, fmt.Errorf("count table: header column %d is %q, want %q", b+1, col, pb.Letters[b])
		}
	}

	var rows [][pb.NumBlocks]int
	offset, next := 1, 0
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != pb.NumBlocks+1 {
			return nil, fmt.Errorf("count table row %d: %d columns, want %d", len(rows)+1, len(fields), pb.NumBlocks+1)
		}
		pos, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("count table row %d: bad position %q", len(rows)+1, fields[0])
		}
		if len(rows) == 0 {
			offset, next = pos, pos
		}
		if pos != next {
			return nil, fmt.Errorf("count table row %d: position %d breaks contiguous numbering (want %d)", len(rows)+1, pos, next)
		}
		next++
		var row [pb.NumBlocks]int
		for b := 0; b < pb.NumBlocks; b++ {
			c, err := strconv.Atoi(fields[b+1])
			if err != nil || c < 0 {
				return nil, fmt.Errorf("count table row %d: bad count %q for %c", len(rows)+1, fields[b+1], pb.Letters[b])
			}
			row[b] = c
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("count table: no data rows")
	}
	return &Matrix{rows: rows, offset: offset}, nil
}
