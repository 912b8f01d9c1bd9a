// internal/writers/writers.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"

	"pbxplore/internal/count"
	"pbxplore/internal/fasta"
	"pbxplore/internal/neq"
	"pbxplore/internal/pb"
	"pbxplore/internal/transfac"
	"pbxplore/pkg/api"
)

// Output format names accepted by the tools.
const (
	FormatFasta    = "fasta"
	FormatFlat     = "flat"
	FormatJSON     = "json"
	FormatCount    = "count"
	FormatTransfac = "transfac"
	FormatNeq      = "neq"
)

// StartSequenceWriter consumes assigned sequences on the returned channel
// and writes them in the requested format: fasta (wrapped records), flat
// (one sequence per line), or a JSON array of pkg/api.SequenceV1. The error
// channel yields the first write error after the input channel is closed.
func StartSequenceWriter(out io.Writer, format string, bufSize int) (chan<- fasta.Record, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan fasta.Record, bufSize)
	errCh := make(chan error, 1)
	go func() {
		var err error
		switch format {
		case FormatFlat:
			for rec := range in {
				if err != nil {
					continue
				}
				_, err = fmt.Fprintln(out, rec.Seq)
			}
		case FormatJSON:
			list := make([]api.SequenceV1, 0, 128)
			for rec := range in {
				list = append(list, api.SequenceV1{Frame: rec.Header, Sequence: rec.Seq})
			}
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			err = enc.Encode(list)
		default:
			for rec := range in {
				if err != nil {
					continue
				}
				err = fasta.WriteEntry(out, rec.Header, rec.Seq)
			}
		}
		errCh <- err
	}()
	return in, errCh
}

// WriteCounts renders a count matrix as a fixed-width table (default),
// transfac matrix, or JSON rows. id is only used by the transfac format.
func WriteCounts(out io.Writer, format, id string, m *count.Matrix) error {
	switch format {
	case FormatTransfac:
		return transfac.Write(out, id, m)
	case FormatJSON:
		rows := make([]api.CountRowV1, 0, m.Len())
		for i := 0; i < m.Len(); i++ {
			pos := m.Offset() + i
			counts := make(map[string]int, pb.NumBlocks)
			for b := 0; b < pb.NumBlocks; b++ {
				counts[string(pb.Letters[b])] = m.Count(pos, pb.Block(b))
			}
			rows = append(rows, api.CountRowV1{Position: pos, Counts: counts})
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	default:
		return count.Write(out, m)
	}
}

// WriteNeq renders a Neq series as the two-column table (default) or JSON
// rows; positions without data carry a null Neq in JSON.
func WriteNeq(out io.Writer, format string, s neq.Series) error {
	if format != FormatJSON {
		return neq.Write(out, s)
	}
	rows := make([]api.NeqRowV1, 0, len(s))
	for _, v := range s {
		row := api.NeqRowV1{Position: v.Pos}
		if v.HasData {
			n := v.Neq
			row.Neq = &n
		}
		rows = append(rows, row)
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}
