// internal/neq/neq.go

// Package neq derives the Neq conformational-diversity score from a count
// matrix. Neq is the "equivalent number of protein blocks" at a position:
// exp of the Shannon entropy of the letter frequencies, 1 when a single
// block dominates, 16 under a perfectly uniform distribution.
package neq

import (
	"errors"
	"fmt"
	"io"
	"math"

	"pbxplore/internal/count"
	"pbxplore/internal/pb"
)

// ErrBadRange rejects position windows outside the series or with min > max.
var ErrBadRange = errors.New("neq: invalid position range")

// Value is the diversity score at one position. HasData is false when no
// frame produced a defined assignment there; such positions carry no number
// at all rather than a misleading 0 or 1.
type Value struct {
	Pos     int
	Neq     float64
	HasData bool
}

// Series holds one Value per position, aligned with the count matrix rows.
type Series []Value

// Compute derives the Neq series from a finalized count matrix. Letters with
// zero count are excluded from the entropy sum (0*log 0 == 0 by convention),
// so a single-letter position comes out exactly 1.
func Compute(m *count.Matrix) Series {
	s := make(Series, 0, m.Len())
	for i := 0; i < m.Len(); i++ {
		pos := m.Offset() + i
		total := m.Total(pos)
		if total == 0 {
			s = append(s, Value{Pos: pos})
			continue
		}
		h := 0.0
		for b := 0; b < pb.NumBlocks; b++ {
			c := m.Count(pos, pb.Block(b))
			if c == 0 {
				continue
			}
			f := float64(c) / float64(total)
			h += f * math.Log(f)
		}
		s = append(s, Value{Pos: pos, Neq: math.Exp(-h), HasData: true})
	}
	return s
}

// CheckRange validates an inclusive position window min..max against the
// extent lo..hi. Callers holding only a count matrix can reject a bad
// window up front, before computing anything from it.
func CheckRange(lo, hi, min, max int) error {
	if min > max {
		return fmt.Errorf("%w: min %d > max %d", ErrBadRange, min, max)
	}
	if min < lo || max > hi {
		return fmt.Errorf("%w: %d..%d outside %d..%d", ErrBadRange, min, max, lo, hi)
	}
	return nil
}

// Restrict returns the sub-series covering positions min..max inclusive.
// Bounds outside the series, or min > max, fail before any slicing.
func Restrict(s Series, min, max int) (Series, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: empty series", ErrBadRange)
	}
	lo := s[0].Pos
	if err := CheckRange(lo, s[len(s)-1].Pos, min, max); err != nil {
		return nil, err
	}
	return s[min-lo : max-lo+1], nil
}

// Write renders the series as a two-column "resid Neq" table. Positions
// without data show "-" in place of a number.
func Write(w io.Writer, s Series) error {
	if _, err := fmt.Fprintf(w, "%-6s %8s \n", "resid", "Neq"); err != nil {
		return err
	}
	for _, v := range s {
		var err error
		if v.HasData {
			_, err = fmt.Fprintf(w, "%-6d %8.2f \n", v.Pos, v.Neq)
		} else {
			_, err = fmt.Fprintf(w, "%-6d %8s \n", v.Pos, "-")
		}
		if err != nil {
			return err
		}
	}
	return nil
}
