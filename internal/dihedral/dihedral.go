// internal/dihedral/dihedral.go
package dihedral

// WindowResidues is the number of consecutive residues a classification
// window spans (two on each side of the anchor).
const WindowResidues = 5

// WindowAngles is the number of dihedral angles in one window.
const WindowAngles = 8

// Window holds the eight backbone dihedral angles used to classify one
// residue, in degrees and in this order:
// psi(i-2), phi(i-1), psi(i-1), phi(i), psi(i), phi(i+1), psi(i+1), phi(i+2).
type Window [WindowAngles]float64

// Residue carries the backbone torsions of a single residue. Angles are in
// degrees within (-180, 180]; HasPhi/HasPsi are false when the torsion does
// not exist (chain terminus) or could not be measured (missing atoms).
type Residue struct {
	Num    int
	Phi    float64
	Psi    float64
	HasPhi bool
	HasPsi bool
}

// Frame is one conformational snapshot of one chain: residues in increasing
// number order. A gap in numbering marks a chain break.
type Frame struct {
	ID       string
	Residues []Residue
}

// Len returns the number of residues in the frame.
func (f *Frame) Len() int { return len(f.Residues) }

// angleSpec maps each window slot to (residue offset from anchor, phi/psi).
var angleSpec = [WindowAngles]struct {
	off int
	psi bool
}{
	{-2, true},
	{-1, false},
	{-1, true},
	{0, false},
	{0, true},
	{1, false},
	{1, true},
	{2, false},
}

// WindowAt gathers the window anchored on residue index i (0-based).
// ok is false when the window is incomplete: anchor within two residues of
// either terminus, a numbering gap among the five residues, or any required
// phi/psi missing.
func (f *Frame) WindowAt(i int) (Window, bool) {
	var w Window
	if i < 2 || i+2 >= len(f.Residues) {
		return w, false
	}
	num := f.Residues[i].Num
	for k := -2; k <= 2; k++ {
		if f.Residues[i+k].Num != num+k {
			return w, false
		}
	}
	for slot, spec := range angleSpec {
		r := f.Residues[i+spec.off]
		if spec.psi {
			if !r.HasPsi {
				return w, false
			}
			w[slot] = r.Psi
		} else {
			if !r.HasPhi {
				return w, false
			}
			w[slot] = r.Phi
		}
	}
	return w, true
}
