// SPDX-License-Identifier: MIT

// Package matrix: elementary linear-algebra operators. Elementwise ops
// are dense Map rewrites over the left operand reading the right operand
// at the same flat index; Dot is the textbook O(rows·cols·inner) product
// with per-index row/column caches, without blocking or tiling tricks.
package matrix

// zip validates shapes and runs a dense elementwise combination of a and
// b. Shared by Add and Hadamard.
func zip[V Number](a, b *Matrix[V], op func(x, y V) V) (*Matrix[V], error) {
	if err := sameShape(a, b); err != nil {
		return nil, err
	}
	out := Map(a, func(i int, v V) V {
		w, err := b.store.Get(i)
		if err != nil {
			panic(err) // unreachable: shapes validated above
		}
		return op(v, w)
	})
	return out, nil
}

// Add returns the elementwise sum a + b. Returns ErrShapeMismatch unless
// both operands share identical dimensions. Complexity: O(rows*cols).
func Add[V Number](a, b *Matrix[V]) (*Matrix[V], error) {
	return zip(a, b, func(x, y V) V { return x + y })
}

// Hadamard returns the elementwise product a ∘ b. Returns
// ErrShapeMismatch unless both operands share identical dimensions.
// Complexity: O(rows*cols).
func Hadamard[V Number](a, b *Matrix[V]) (*Matrix[V], error) {
	return zip(a, b, func(x, y V) V { return x * y })
}

// Scale returns the matrix with every cell multiplied by k.
// Complexity: O(rows*cols).
func Scale[V Number](m *Matrix[V], k V) *Matrix[V] {
	return Map(m, func(_ int, v V) V { return v * k })
}

// Dot returns the matrix product a·b. Requires a.Cols() == b.Rows(),
// otherwise ErrShapeMismatch.
//
// Every row of a and every column of b (transposed to a row vector) is
// extracted once and cached by index; each output cell (i, j) is then
// Sum(Hadamard(row_i, col_j)). Complexity: O(a.Rows()·b.Cols()·inner).
func Dot[V Number](a, b *Matrix[V]) (*Matrix[V], error) {
	if a.cols != b.rows {
		return nil, ErrShapeMismatch
	}

	rows := make([]*Matrix[V], a.rows)
	for i := range rows {
		r, err := a.Row(i)
		if err != nil {
			return nil, err
		}
		rows[i] = r
	}
	cols := make([]*Matrix[V], b.cols)
	for j := range cols {
		c, err := b.Column(j)
		if err != nil {
			return nil, err
		}
		cols[j] = c.Transpose()
	}

	out := mustBuilder(a.rows*b.cols, a.Default())
	for i := 0; i < a.rows; i++ {
		for j := 0; j < b.cols; j++ {
			h, err := Hadamard(rows[i], cols[j])
			if err != nil {
				return nil, err
			}
			if err = out.Write(i*b.cols+j, Sum(h)); err != nil {
				return nil, err
			}
		}
	}
	out.MarkDense()
	return &Matrix[V]{store: out.Store(), rows: a.rows, cols: b.cols}, nil
}
