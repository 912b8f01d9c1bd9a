// Package pipeline fans frames out to classification workers and hands the
// resulting PB sequences to a visit callback in input order.
//
// Classification is embarrassingly parallel: each frame is classified from
// immutable inputs (the reference library and that frame's dihedrals) with
// no shared mutable state, so the collector is the only synchronization
// point. Aggregation stays outside: callers fold sequences into a count
// matrix themselves, sequentially or via partial-matrix merges.
package pipeline
