// Package packmat is a rank-2 matrix engine built on default-value
// compression: a matrix stores only the prefix of cells that was ever
// written, and everything past that watermark is guaranteed to hold the
// default value.
//
// 🚀 What is packmat?
//
//	A small, value-semantic library that brings together:
//		• Packed storage: flat cell slice + default + sparse extent watermark
//		• Matrix views: position addressing, rows, columns, reshape
//		• Sparse traversal: folds that skip the guaranteed-default tail
//		• Aggregates: Min/Max/ArgMin/ArgMax, Member, Find, Sum, Trace
//		• Structural transforms: Transpose, flips, drops, Diagonal, Concat
//		• Naive linear algebra: Add, Hadamard, Scale, Dot, Identity
//		• Resumable iteration: Cont/Suspend/Halt reductions you can pause
//		• Snapshots: self-describing persistence with LZ4/zstd payloads
//
// ✨ Why choose packmat?
//
//   - Value semantics – every mutator returns a fresh matrix, inputs stay intact
//   - Sparse-aware – aggregates and transforms touch only written cells
//   - Pure Go – generic over any comparable cell type, no cgo
//   - Predictable errors – sentinel errors, always checked with errors.Is
//
// Everything is organized under three subpackages:
//
//	packed/   — the compressed flat store and its pre-publication builder
//	matrix/   — the rank-2 engine: access, folds, aggregates, transforms, linalg
//	snapshot/ — binary container persistence with pluggable codecs & compression
//
// Quick ASCII example:
//
//	default 0        written prefix   guaranteed tail
//	┌─────────┐      ┌───┬───┬───┐    ┌───┬───┐
//	│ 0  7  0 │  →   │ 0 │ 7 │ 0 │  + │ 0 │ 0 │  (never materialized)
//	│ 0  0  ⋯ │      └───┴───┴───┘    └───┴───┘
//	└─────────┘           extent=3
//
// Dive into the matrix package docs for the full operation surface.
//
//	go get github.com/katalvlaran/packmat
package packmat
