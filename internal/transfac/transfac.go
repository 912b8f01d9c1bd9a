// internal/transfac/transfac.go

// Package transfac exports a count matrix in the transfac motif format
// consumed by sequence-logo tools.
// See http://meme.sdsc.edu/meme/doc/transfac-format.html.
package transfac

import (
	"fmt"
	"io"

	"pbxplore/internal/count"
	"pbxplore/internal/pb"
)

// Write renders the matrix with the given identifier. Row layout mirrors the
// count table: one fixed-width column per block letter, an X consensus stub
// at the end of each row.
func Write(w io.Writer, id string, m *count.Matrix) error {
	if _, err := fmt.Fprintf(w, "ID %s\n", id); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "BF unknown"); err != nil {
		return err
	}
	header := "P0  "
	for b := 0; b < pb.NumBlocks; b++ {
		header += fmt.Sprintf("%6c", pb.Letters[b])
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for i := 0; i < m.Len(); i++ {
		pos := m.Offset() + i
		row := fmt.Sprintf("%05d ", pos)
		for b := 0; b < pb.NumBlocks; b++ {
			if b > 0 {
				row += " "
			}
			row += fmt.Sprintf("%5d", m.Count(pos, pb.Block(b)))
		}
		row += "    X"
		if _, err := fmt.Fprintln(w, row); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "XX"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "//")
	return err
}
