// SPDX-License-Identifier: MIT

// Package matrix: structural transforms. All of them follow the same
// pattern: pre-fill a fresh store with the default value, then replay
// only the source cells below the sparse extent into their mapped target
// indices. Cells inside the default-elided region stay default in the
// result, which is valid because source and result share the default by
// construction.
package matrix

// Transpose returns the Cols()×Rows() matrix with every (r, c) moved to
// (c, r). Complexity: O(SparseExtent()) writes over an O(Size()) buffer.
func (m *Matrix[V]) Transpose() *Matrix[V] {
	b := mustBuilder(m.Size(), m.Default())
	m.store.Scan(0, m.SparseExtent(), func(i int, v V) bool {
		p := m.PositionOf(i)
		if err := b.Write(p.Col*m.rows+p.Row, v); err != nil {
			panic(err) // unreachable: mapped index stays in range
		}
		return true
	})
	return &Matrix[V]{store: b.Store(), rows: m.cols, cols: m.rows}
}

// FlipLR returns the matrix mirrored horizontally: column c moves to
// Cols()-1-c. Complexity: O(SparseExtent()) writes.
func (m *Matrix[V]) FlipLR() *Matrix[V] {
	b := mustBuilder(m.Size(), m.Default())
	m.store.Scan(0, m.SparseExtent(), func(i int, v V) bool {
		p := m.PositionOf(i)
		if err := b.Write(p.Row*m.cols+(m.cols-1-p.Col), v); err != nil {
			panic(err)
		}
		return true
	})
	return &Matrix[V]{store: b.Store(), rows: m.rows, cols: m.cols}
}

// FlipUD returns the matrix mirrored vertically: row r moves to
// Rows()-1-r. Complexity: O(SparseExtent()) writes.
func (m *Matrix[V]) FlipUD() *Matrix[V] {
	b := mustBuilder(m.Size(), m.Default())
	m.store.Scan(0, m.SparseExtent(), func(i int, v V) bool {
		p := m.PositionOf(i)
		if err := b.Write((m.rows-1-p.Row)*m.cols+p.Col, v); err != nil {
			panic(err)
		}
		return true
	})
	return &Matrix[V]{store: b.Store(), rows: m.rows, cols: m.cols}
}

// DropRow returns the (Rows()-1)×Cols() matrix with row index removed and
// the remaining cells compacted in order. Returns ErrInvalidDimension if
// the matrix has only one row or the index is out of range.
// Complexity: O(SparseExtent()) writes.
func (m *Matrix[V]) DropRow(index int) (*Matrix[V], error) {
	if m.rows == 1 || index < 0 || index >= m.rows {
		return nil, ErrInvalidDimension
	}
	b := mustBuilder((m.rows-1)*m.cols, m.Default())
	m.store.Scan(0, m.SparseExtent(), func(i int, v V) bool {
		row := i / m.cols
		if row == index {
			return true // dropped row, skip
		}
		target := i
		if row > index {
			target -= m.cols
		}
		if err := b.Write(target, v); err != nil {
			panic(err)
		}
		return true
	})
	return &Matrix[V]{store: b.Store(), rows: m.rows - 1, cols: m.cols}, nil
}

// DropColumn returns the Rows()×(Cols()-1) matrix with column index
// removed and the remaining cells compacted in order. Returns
// ErrInvalidDimension if the matrix has only one column or the index is
// out of range. Complexity: O(SparseExtent()) writes.
func (m *Matrix[V]) DropColumn(index int) (*Matrix[V], error) {
	if m.cols == 1 || index < 0 || index >= m.cols {
		return nil, ErrInvalidDimension
	}
	b := mustBuilder(m.rows*(m.cols-1), m.Default())
	m.store.Scan(0, m.SparseExtent(), func(i int, v V) bool {
		row, col := i/m.cols, i%m.cols
		if col == index {
			return true // dropped column, skip
		}
		target := row*(m.cols-1) + col
		if col > index {
			target--
		}
		if err := b.Write(target, v); err != nil {
			panic(err)
		}
		return true
	})
	return &Matrix[V]{store: b.Store(), rows: m.rows, cols: m.cols - 1}, nil
}

// Diagonal returns the main diagonal as a 1×Cols() row matrix, reading
// (i, i) for every column i. Returns ErrPositionOutOfBounds when the
// matrix has fewer rows than columns. Complexity: O(cols).
func (m *Matrix[V]) Diagonal() (*Matrix[V], error) {
	b := mustBuilder(m.cols, m.Default())
	for i := 0; i < m.cols; i++ {
		v, err := m.Get(Position{Row: i, Col: i})
		if err != nil {
			return nil, err
		}
		if err = b.Write(i, v); err != nil {
			return nil, err
		}
	}
	return &Matrix[V]{store: b.Store(), rows: 1, cols: m.cols}, nil
}

// Identity creates the n×n matrix holding the multiplicative identity on
// the diagonal and the default value everywhere else.
// Returns ErrInvalidDimension if n < 1. Complexity: O(n²).
func Identity[V Number](n int, opts ...Option[V]) (*Matrix[V], error) {
	m, err := New(n, n, opts...)
	if err != nil {
		return nil, err
	}
	b := mustBuilder(m.Size(), m.Default())
	for i := 0; i < n; i++ {
		if err = b.Write(i*n+i, V(1)); err != nil {
			return nil, err
		}
	}
	return &Matrix[V]{store: b.Store(), rows: n, cols: n}, nil
}

// Concat joins mats along axis into one matrix.
//
// AxisRows stacks vertically: all operands must share the column count
// and the result has the summed row count. AxisCols stacks horizontally:
// all operands must share the row count and the result has the summed
// column count. Operands are placed in list order.
//
// The result's default value is taken from the first operand unless
// overridden with WithDefault. Returns ErrShapeMismatch for an empty
// operand list or misaligned operands.
// Complexity: O(sum of sizes).
func Concat[V comparable](axis Axis, mats []*Matrix[V], opts ...Option[V]) (*Matrix[V], error) {
	if len(mats) == 0 {
		return nil, ErrShapeMismatch
	}
	def := mats[0].Default()
	if len(opts) > 0 {
		def = gatherOptions(opts).def
	}

	switch axis {
	case AxisRows:
		cols, rows := mats[0].cols, 0
		for _, src := range mats {
			if src.cols != cols {
				return nil, ErrShapeMismatch
			}
			rows += src.rows
		}
		b := mustBuilder(rows*cols, def)
		offset := 0
		for _, src := range mats {
			// A differing source default cannot be elided: its unwritten
			// cells hold a value the target would misreport as def.
			limit := src.SparseExtent()
			if src.Default() != def {
				limit = src.Size()
			}
			src.store.Scan(0, limit, func(i int, v V) bool {
				if err := b.Write(offset+i, v); err != nil {
					panic(err)
				}
				return true
			})
			offset += src.Size()
		}
		return &Matrix[V]{store: b.Store(), rows: rows, cols: cols}, nil

	case AxisCols:
		rows, cols := mats[0].rows, 0
		for _, src := range mats {
			if src.rows != rows {
				return nil, ErrShapeMismatch
			}
			cols += src.cols
		}
		b := mustBuilder(rows*cols, def)
		colOffset := 0
		for _, src := range mats {
			sc := src.cols
			limit := src.SparseExtent()
			if src.Default() != def {
				limit = src.Size()
			}
			src.store.Scan(0, limit, func(i int, v V) bool {
				r, c := i/sc, i%sc
				if err := b.Write(r*cols+colOffset+c, v); err != nil {
					panic(err)
				}
				return true
			})
			colOffset += sc
		}
		return &Matrix[V]{store: b.Store(), rows: rows, cols: cols}, nil

	default:
		return nil, ErrShapeMismatch
	}
}
