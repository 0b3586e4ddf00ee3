// SPDX-License-Identifier: MIT

// Package matrix: construction and the basic cell-access surface.
// Traversals live in fold.go, aggregates in aggregate.go, structural
// transforms in transform.go.
package matrix

import "github.com/katalvlaran/packmat/packed"

// New creates a rows×cols matrix with every cell holding the default
// value (WithDefault, or the zero value of V).
// Returns ErrInvalidDimension if rows < 1 or cols < 1.
// Complexity: O(rows*cols).
func New[V comparable](rows, cols int, opts ...Option[V]) (*Matrix[V], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	cfg := gatherOptions(opts)
	s, err := packed.New(rows*cols, cfg.def)
	if err != nil {
		return nil, err
	}
	return &Matrix[V]{store: s, rows: rows, cols: cols}, nil
}

// FromFlat creates a rows×cols matrix filled row-major from values.
// Shorter inputs are default-filled; longer inputs are truncated. The
// sparse extent becomes the copied count.
// Returns ErrShapeMismatch for an empty values list and
// ErrInvalidDimension for non-positive dimensions.
// Complexity: O(rows*cols).
func FromFlat[V comparable](values []V, rows, cols int, opts ...Option[V]) (*Matrix[V], error) {
	if len(values) == 0 {
		return nil, ErrShapeMismatch
	}
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	cfg := gatherOptions(opts)
	s, err := packed.FromSlice(values, rows*cols, cfg.def)
	if err != nil {
		return nil, err
	}
	return &Matrix[V]{store: s, rows: rows, cols: cols}, nil
}

// FromNested creates a matrix whose row count is len(rows) and whose
// column count is the length of the first inner slice. All inner slices
// must share that length; ragged input returns ErrShapeMismatch rather
// than silently corrupting the dimension metadata.
// Complexity: O(rows*cols).
func FromNested[V comparable](rows [][]V, opts ...Option[V]) (*Matrix[V], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrShapeMismatch
	}
	cols := len(rows[0])
	flat := make([]V, 0, len(rows)*cols)
	for _, row := range rows {
		if len(row) != cols {
			return nil, ErrShapeMismatch
		}
		flat = append(flat, row...)
	}
	return FromFlat(flat, len(rows), cols, opts...)
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix[V]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix[V]) Cols() int { return m.cols }

// Size returns the total cell count, rows*cols. Complexity: O(1).
func (m *Matrix[V]) Size() int { return m.store.Len() }

// Default returns the value unwritten cells read back as.
// Complexity: O(1).
func (m *Matrix[V]) Default() V { return m.store.Default() }

// SparseExtent returns one past the highest flat index ever explicitly
// written. Every index at or beyond it is guaranteed to hold Default().
// Resets never lower it, so it is a safe upper bound rather than a tight
// non-default count. Complexity: O(1).
func (m *Matrix[V]) SparseExtent() int { return m.store.SparseExtent() }

// Get returns the value at p, or ErrPositionOutOfBounds.
// Complexity: O(1).
func (m *Matrix[V]) Get(p Position) (V, error) {
	if err := m.validatePosition(p); err != nil {
		var zero V
		return zero, err
	}
	return m.store.Get(m.IndexOf(p))
}

// Set returns a new matrix where cell p holds v. The receiver is left
// untouched. Returns ErrPositionOutOfBounds on an invalid position.
// Complexity: O(rows*cols) (defensive copy of the backing store).
func (m *Matrix[V]) Set(p Position, v V) (*Matrix[V], error) {
	if err := m.validatePosition(p); err != nil {
		return nil, err
	}
	s, err := m.store.Set(m.IndexOf(p), v)
	if err != nil {
		return nil, err
	}
	return &Matrix[V]{store: s, rows: m.rows, cols: m.cols}, nil
}

// Reset returns a new matrix where cell p is restored to the default
// value. The sparse extent is NOT lowered.
// Complexity: O(rows*cols).
func (m *Matrix[V]) Reset(p Position) (*Matrix[V], error) {
	if err := m.validatePosition(p); err != nil {
		return nil, err
	}
	s, err := m.store.Reset(m.IndexOf(p))
	if err != nil {
		return nil, err
	}
	return &Matrix[V]{store: s, rows: m.rows, cols: m.cols}, nil
}

// SetRow returns a new matrix whose row index holds the cells of the
// 1×Cols() matrix row, written in index order.
// Returns ErrShapeMismatch unless row has exactly one row and matching
// columns, and ErrPositionOutOfBounds for an invalid row index.
// Complexity: O(rows*cols).
func (m *Matrix[V]) SetRow(index int, row *Matrix[V]) (*Matrix[V], error) {
	if index < 0 || index >= m.rows {
		return nil, ErrPositionOutOfBounds
	}
	if row.rows != 1 || row.cols != m.cols {
		return nil, ErrShapeMismatch
	}
	b := packed.NewBuilderFrom(m.store)
	base := index * m.cols
	for c := 0; c < m.cols; c++ {
		v, err := row.store.Get(c)
		if err != nil {
			return nil, err
		}
		if err = b.Write(base+c, v); err != nil {
			return nil, err
		}
	}
	return &Matrix[V]{store: b.Store(), rows: m.rows, cols: m.cols}, nil
}

// SetColumn returns a new matrix whose column index holds the cells of
// the Rows()×1 matrix col, written in index order.
// Returns ErrShapeMismatch unless col has exactly one column and matching
// rows, and ErrPositionOutOfBounds for an invalid column index.
// Complexity: O(rows*cols).
func (m *Matrix[V]) SetColumn(index int, col *Matrix[V]) (*Matrix[V], error) {
	if index < 0 || index >= m.cols {
		return nil, ErrPositionOutOfBounds
	}
	if col.cols != 1 || col.rows != m.rows {
		return nil, ErrShapeMismatch
	}
	b := packed.NewBuilderFrom(m.store)
	for r := 0; r < m.rows; r++ {
		v, err := col.store.Get(r)
		if err != nil {
			return nil, err
		}
		if err = b.Write(r*m.cols+index, v); err != nil {
			return nil, err
		}
	}
	return &Matrix[V]{store: b.Store(), rows: m.rows, cols: m.cols}, nil
}

// Reshape reinterprets the same cells under new dimensions in row-major
// order. The element count must be conserved: rows*cols must equal
// Size(), otherwise ErrShapeMismatch.
// Complexity: O(rows*cols).
func (m *Matrix[V]) Reshape(rows, cols int) (*Matrix[V], error) {
	if err := validateShape(rows, cols); err != nil {
		return nil, err
	}
	if rows*cols != m.Size() {
		return nil, ErrShapeMismatch
	}
	return &Matrix[V]{store: m.store.Clone(), rows: rows, cols: cols}, nil
}

// Clone returns a deep copy of the matrix, independent of the original.
// Complexity: O(rows*cols).
func (m *Matrix[V]) Clone() *Matrix[V] {
	return &Matrix[V]{store: m.store.Clone(), rows: m.rows, cols: m.cols}
}

// Row extracts row index as a new 1×Cols() matrix sharing the default
// value. Returns ErrInvalidDimension for an out-of-range index.
// Complexity: O(cols).
func (m *Matrix[V]) Row(index int) (*Matrix[V], error) {
	if index < 0 || index >= m.rows {
		return nil, ErrInvalidDimension
	}
	base := index * m.cols
	end := base + m.cols
	if ext := m.SparseExtent(); ext < end {
		end = ext
	}
	values := make([]V, 0, m.cols)
	m.store.Scan(base, end, func(_ int, v V) bool {
		values = append(values, v)
		return true
	})
	s, err := packed.FromSlice(values, m.cols, m.Default())
	if err != nil {
		return nil, err
	}
	return &Matrix[V]{store: s, rows: 1, cols: m.cols}, nil
}

// Column extracts column index as a new Rows()×1 matrix sharing the
// default value. Returns ErrInvalidDimension for an out-of-range index.
// Complexity: O(rows).
func (m *Matrix[V]) Column(index int) (*Matrix[V], error) {
	if index < 0 || index >= m.cols {
		return nil, ErrInvalidDimension
	}
	ext := m.SparseExtent()
	values := make([]V, 0, m.rows)
	for r := 0; r < m.rows; r++ {
		i := r*m.cols + index
		if i >= ext {
			break // everything from here on is the default
		}
		v, err := m.store.Get(i)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	s, err := packed.FromSlice(values, m.rows, m.Default())
	if err != nil {
		return nil, err
	}
	return &Matrix[V]{store: s, rows: m.rows, cols: 1}, nil
}
