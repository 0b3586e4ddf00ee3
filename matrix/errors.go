// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for programmer errors in private
// helpers.

package matrix

import (
	"errors"

	"github.com/katalvlaran/packmat/packed"
)

var (
	// ErrPositionOutOfBounds indicates a (row, col) pair outside the
	// declared dimensions. Public accessors (Get/Set/Reset) MUST return
	// this, not panic.
	ErrPositionOutOfBounds = errors.New("matrix: position out of bounds")

	// ErrShapeMismatch indicates incompatible operand dimensions:
	// Add/Hadamard/Dot shape rules, SetRow/SetColumn vector shape,
	// Concat alignment, Reshape element-count conservation, or an empty
	// input list where values are required.
	ErrShapeMismatch = errors.New("matrix: shape mismatch")

	// ErrInvalidDimension indicates a dimension that is (or would become)
	// degenerate: non-positive rows/cols at construction, DropRow on a
	// single-row matrix, DropColumn on a single-column matrix, or a
	// row/column index out of range for those operations.
	ErrInvalidDimension = errors.New("matrix: invalid dimension")

	// ErrNotFound is returned by Find when no cell matches. It is a
	// normal negative result, not a failure of the matrix.
	ErrNotFound = errors.New("matrix: value not found")

	// ErrNotSuspended is returned by Reduction.Resume when the reduction
	// did not stop on a Suspend command.
	ErrNotSuspended = errors.New("matrix: reduction is not suspended")
)

// ErrIndexOutOfRange aliases the backing store's sentinel so callers can
// match flat-index violations (Seq.Slice, raw store access) without
// importing packed. errors.Is(err, ErrIndexOutOfRange) holds either way.
var ErrIndexOutOfRange = packed.ErrIndexOutOfRange
