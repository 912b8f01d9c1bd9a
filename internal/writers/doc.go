// Package writers turns assigned sequences, count matrices, and Neq series
// into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (fasta wrap, tables, JSON).
//   - pb/count/neq stay domain-only; apps stay orchestration-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
