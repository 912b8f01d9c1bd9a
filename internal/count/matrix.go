// internal/count/matrix.go
package count

import (
	"errors"
	"fmt"

	"pbxplore/internal/pb"
)

// Merge and Fold refuse misaligned inputs instead of truncating: silently
// dropping rows would corrupt every statistic computed downstream.
var (
	ErrLengthMismatch = errors.New("count: sequence lengths differ")
	ErrOffsetMismatch = errors.New("count: position numbering differs")
)

// Matrix accumulates, per sequence position, how many frames were assigned
// each block. Rows use 1-based local numbering: row 1 is the first
// classifiable position unless an explicit offset says otherwise.
type Matrix struct {
	rows   [][pb.NumBlocks]int
	offset int // position number of rows[0]
}

// New returns an empty matrix over `length` positions numbered from 1.
func New(length int) *Matrix { return NewOffset(length, 1) }

// NewOffset returns an empty matrix whose first row carries position number
// `offset`. The offset participates in Merge compatibility checks.
func NewOffset(length, offset int) *Matrix {
	return &Matrix{rows: make([][pb.NumBlocks]int, length), offset: offset}
}

// Len returns the number of positions covered.
func (m *Matrix) Len() int { return len(m.rows) }

// Offset returns the position number of the first row.
func (m *Matrix) Offset() int { return m.offset }

// Count returns the tally of block b at position pos (numbering per Offset).
func (m *Matrix) Count(pos int, b pb.Block) int {
	return m.rows[pos-m.offset][b]
}

// Total returns the number of defined observations at position pos.
func (m *Matrix) Total(pos int) int {
	var n int
	for _, c := range m.rows[pos-m.offset] {
		n += c
	}
	return n
}

// Fold adds one frame's sequence into the matrix. Undefined positions
// contribute to no letter's count. The sequence must cover exactly the
// matrix's positions.
func (m *Matrix) Fold(seq pb.Sequence) error {
	if len(seq) != len(m.rows) {
		return fmt.Errorf("%w: sequence has %d positions, matrix has %d",
			ErrLengthMismatch, len(seq), len(m.rows))
	}
	for i, a := range seq {
		if !a.Defined() {
			continue
		}
		m.rows[i][a.Block()]++
	}
	return nil
}

// Merge adds another matrix built from a disjoint frame set into m.
// It is associative and commutative, so partial matrices from parallel
// workers can be reduced in any order. Both operands must cover the same
// number of positions under the same numbering; anything else fails hard.
func (m *Matrix) Merge(o *Matrix) error {
	if len(o.rows) != len(m.rows) {
		return fmt.Errorf("%w: %d positions vs %d",
			ErrLengthMismatch, len(m.rows), len(o.rows))
	}
	if o.offset != m.offset {
		return fmt.Errorf("%w: first position %d vs %d",
			ErrOffsetMismatch, m.offset, o.offset)
	}
	for i := range m.rows {
		for b := 0; b < pb.NumBlocks; b++ {
			m.rows[i][b] += o.rows[i][b]
		}
	}
	return nil
}
