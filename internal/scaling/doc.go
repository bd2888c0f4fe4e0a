// Package scaling is the algorithmic heart of the scaffolder. It derives a
// monotonically growing sequence of grid/process configurations from a base
// case: Advance is the pure per-step transition, and Generate wraps it in a
// bounded, validated iterator that stops at a processor ceiling.
//
// Everything in this package is deterministic, synchronous, and free of I/O;
// a Sequence may be driven from any goroutine as long as it isn't shared.
package scaling
