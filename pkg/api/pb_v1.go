// pkg/api/pb_v1.go
package api

// SequenceV1 is the stable JSON schema for one frame's PB assignment.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type SequenceV1 struct {
	Frame    string `json:"frame"`
	Sequence string `json:"sequence"` // letters a..p, Z = unclassifiable
}

// CountRowV1 is the stable schema for one position of the count matrix.
type CountRowV1 struct {
	Position int            `json:"position"`
	Counts   map[string]int `json:"counts"` // letter -> occurrences
}

// NeqRowV1 is the stable schema for one position of the Neq series.
// Neq is null for positions with no defined observation.
type NeqRowV1 struct {
	Position int      `json:"position"`
	Neq      *float64 `json:"neq"`
}
