// Package matrix: centralized shape and bounds validation helpers.
// Keeping the checks here avoids drift between constructors, accessors
// and transforms; every helper returns a package sentinel from errors.go.
package matrix

import "github.com/katalvlaran/packmat/packed"

// validateShape rejects non-positive dimensions.
func validateShape(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return ErrInvalidDimension
	}
	return nil
}

// validatePosition rejects positions outside the declared dimensions.
func (m *Matrix[V]) validatePosition(p Position) error {
	if p.Row < 0 || p.Row >= m.rows || p.Col < 0 || p.Col >= m.cols {
		return ErrPositionOutOfBounds
	}
	return nil
}

// sameShape rejects operand pairs with differing dimensions.
func sameShape[V comparable](a, b *Matrix[V]) error {
	if a.rows != b.rows || a.cols != b.cols {
		return ErrShapeMismatch
	}
	return nil
}

// mustBuilder allocates a builder for a size derived from an existing,
// valid matrix. A failure here is a programmer error (size ≥ 1 always
// holds for valid inputs), hence the panic.
func mustBuilder[V comparable](length int, def V) *packed.Builder[V] {
	b, err := packed.NewBuilder(length, def)
	if err != nil {
		panic(err)
	}
	return b
}
