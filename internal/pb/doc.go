// Package pb contains the Protein Blocks core: the 16-block reference
// library, the RMSDA classifier, and per-frame sequence assignment. It never
// imports app, cli, pipeline, or writers; keep it domain-only.
//
// External outputs must not depend on the internal shape here — use pkg/api
// for stable wire types (JSON v1).
package pb
