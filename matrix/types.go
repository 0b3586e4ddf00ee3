// Package matrix: domain types shared across construction, traversal and
// transforms. Errors live in errors.go, functional options in options.go
// per the package conventions.
package matrix

import "github.com/katalvlaran/packmat/packed"

// Position addresses a matrix cell in the public API.
// Valid when 0 ≤ Row < Rows() and 0 ≤ Col < Cols().
type Position struct {
	Row int
	Col int
}

// Axis selects the direction of structural operations such as Concat.
type Axis int

const (
	// AxisRows stacks operands vertically: row counts add up, column
	// counts must match.
	AxisRows Axis = iota
	// AxisCols stacks operands horizontally: column counts add up, row
	// counts must match.
	AxisCols
)

// Number constrains element types usable by arithmetic operations
// (Sum, Trace, Add, Hadamard, Scale, Dot, Identity). Ordering-only
// aggregates (Min/Max) need just cmp.Ordered; equality-only operations
// work for any comparable V.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Matrix is an immutable rows×cols view over a default-value-compressed
// flat store. The element type V is fixed per matrix. Every mutating
// operation returns a new *Matrix; the receiver is never modified.
//
// Invariants: rows ≥ 1, cols ≥ 1, store.Len() == rows*cols, and every
// flat index at or beyond store.SparseExtent() holds Default().
type Matrix[V comparable] struct {
	store *packed.Store[V]
	rows  int
	cols  int
}
