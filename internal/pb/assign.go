// internal/pb/assign.go
package pb

import (
	"fmt"
	"math"
	"strings"

	"pbxplore/internal/dihedral"
)

// Block identifies one of the sixteen protein blocks: 0 = 'a' .. 15 = 'p'.
type Block int8

// Letter returns the lowercase letter of the block.
func (b Block) Letter() byte { return Letters[b] }

// Assignment is the outcome of classifying one residue position: a block, or
// Undefined when no complete dihedral window exists there.
type Assignment int8

// Undefined marks a position that cannot be classified (terminus, chain
// break, missing angles). It renders as 'Z' at format boundaries but is not
// a seventeenth letter: aggregation ignores it entirely.
const Undefined Assignment = -1

// Defined reports whether the assignment carries a block.
func (a Assignment) Defined() bool { return a >= 0 }

// Block returns the assigned block; only meaningful when Defined.
func (a Assignment) Block() Block { return Block(a) }

// Letter returns the block letter, or 'Z' for Undefined.
func (a Assignment) Letter() byte {
	if !a.Defined() {
		return 'Z'
	}
	return Letters[a]
}

// Sequence is one frame's assignments, one per eligible residue position
// (chain length minus four). Position p (1-based, local numbering)
// corresponds to index p-1.
type Sequence []Assignment

// String renders the sequence as letters over a..p and Z.
func (s Sequence) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, a := range s {
		sb.WriteByte(a.Letter())
	}
	return sb.String()
}

// ParseSequence converts a letter string back into a Sequence. Letters must
// be a..p; 'Z' or 'z' mark undefined positions. Anything else is an error.
func ParseSequence(str string) (Sequence, error) {
	seq := make(Sequence, len(str))
	for i := 0; i < len(str); i++ {
		c := str[i]
		switch {
		case c >= 'a' && c <= 'p':
			seq[i] = Assignment(c - 'a')
		case c == 'Z' || c == 'z':
			seq[i] = Undefined
		default:
			return nil, fmt.Errorf("invalid protein block %q at position %d", c, i+1)
		}
	}
	return seq, nil
}

// wrap360 maps an angle difference onto (-180, 180].
func wrap360(d float64) float64 {
	if d > 180 {
		return d - 360
	}
	if d <= -180 {
		return d + 360
	}
	return d
}

// rmsda is the root-mean-square angular deviation between two windows,
// using circular differences so that e.g. 179 and -179 are 2 degrees apart.
func rmsda(w, ref dihedral.Window) float64 {
	var sum float64
	for k := range w {
		d := wrap360(w[k] - ref[k])
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(w)))
}

// tieTolerance bounds the RMSDA difference under which two blocks count as
// equidistant; the alphabetically first one then wins, keeping assignment
// reproducible across platforms.
const tieTolerance = 1e-9

// Classify returns the block whose reference window is nearest to w under
// RMSDA. It is a pure function of w and the library.
func (l *Library) Classify(w dihedral.Window) Assignment {
	best := Undefined
	bestD := math.Inf(1)
	for b := 0; b < NumBlocks; b++ {
		if d := rmsda(w, l.refs[b]); d+tieTolerance < bestD {
			best = Assignment(b)
			bestD = d
		}
	}
	return best
}

// AssignFrame classifies every eligible position of one frame. Positions
// whose window is broken (chain break, missing angles) come back Undefined;
// a chain shorter than five residues yields an empty sequence. Frames are
// independent: AssignFrame shares no mutable state across calls.
func AssignFrame(lib *Library, f *dihedral.Frame) Sequence {
	n := f.Len()
	if n < dihedral.WindowResidues {
		return Sequence{}
	}
	seq := make(Sequence, 0, n-4)
	for i := 2; i+2 < n; i++ {
		w, ok := f.WindowAt(i)
		if !ok {
			seq = append(seq, Undefined)
			continue
		}
		seq = append(seq, lib.Classify(w))
	}
	return seq
}
