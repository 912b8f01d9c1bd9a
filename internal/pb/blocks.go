// internal/pb/blocks.go
package pb

import "pbxplore/internal/dihedral"

// NumBlocks is the size of the Protein Blocks alphabet.
const NumBlocks = 16

// Letters lists the block letters in canonical order.
const Letters = "abcdefghijklmnop"

// references holds the canonical dihedral pattern of each block, from
// A. G. de Brevern, C. Etchebest and S. Hazout, "Bayesian probabilistic
// approach for predicting backbone structures in terms of protein blocks",
// Proteins 41:271-288 (2000). Angle order follows dihedral.Window.
var references = [NumBlocks]dihedral.Window{
	{41.14, 75.53, 13.92, -99.80, 131.88, -96.27, 122.08, -99.68},    // a
	{108.24, -90.12, 119.54, -92.21, -18.06, -128.93, 147.04, -99.90}, // b
	{-11.61, -105.66, 94.81, -106.09, 133.56, -106.93, 135.97, -100.63}, // c
	{141.98, -112.79, 132.20, -114.79, 140.11, -111.05, 139.54, -103.16}, // d
	{133.25, -112.37, 137.64, -108.13, 133.00, -87.30, 120.54, 77.40},   // e
	{116.40, -105.53, 129.32, -96.68, 140.72, -74.19, -26.65, -94.51},   // f
	{0.40, -81.83, 4.91, -100.59, 85.50, -71.65, 130.78, 84.98},         // g
	{119.14, -102.58, 130.83, -67.91, 121.55, 76.25, -2.95, -90.88},     // h
	{130.68, -56.92, 119.26, 77.85, 10.42, -99.43, 141.40, -98.01},      // i
	{114.32, -121.47, 118.14, 82.88, -150.05, -83.81, 23.35, -85.82},    // j
	{117.16, -95.41, 140.40, -59.35, -29.23, -72.39, -25.08, -76.16},    // k
	{139.20, -55.96, -32.70, -68.51, -26.09, -74.44, -22.60, -71.74},    // l
	{-39.62, -64.73, -39.52, -65.54, -38.88, -66.89, -37.76, -70.19},    // m
	{-35.34, -65.03, -38.12, -66.34, -29.51, -89.10, -2.91, 77.90},      // n
	{-45.29, -67.44, -27.72, -87.27, 5.13, 77.49, 30.71, -93.23},        // o
	{-27.09, -86.14, 0.30, 59.85, 21.51, -96.30, 132.67, -92.91},        // p
}

// Library is the fixed catalog of reference windows. It is immutable after
// construction; one instance may be shared across goroutines freely.
type Library struct {
	refs [NumBlocks]dihedral.Window
}

// Standard returns a library holding the canonical 16 blocks.
func Standard() *Library { return &Library{refs: references} }

// Size returns the number of blocks in the library.
func (l *Library) Size() int { return NumBlocks }

// Reference returns the canonical window of block b.
func (l *Library) Reference(b Block) dihedral.Window { return l.refs[b] }
