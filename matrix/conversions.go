// Package matrix: position↔index mapping and slice exports.
package matrix

// IndexOf maps a position to its 0-based flat row-major index:
// Row*Cols() + Col. The caller is responsible for position validity;
// IndexOf itself performs no bounds check. Complexity: O(1).
func (m *Matrix[V]) IndexOf(p Position) int {
	return p.Row*m.cols + p.Col
}

// PositionOf is the exact inverse of IndexOf:
// Row = i / Cols(), Col = i % Cols(). Complexity: O(1).
func (m *Matrix[V]) PositionOf(i int) Position {
	return Position{Row: i / m.cols, Col: i % m.cols}
}

// ToFlat exports all cells as a fresh row-major slice of length Size().
// Complexity: O(rows*cols).
func (m *Matrix[V]) ToFlat() []V {
	out := make([]V, m.Size())
	def := m.Default()
	ext := m.SparseExtent()
	for i := ext; i < len(out); i++ {
		out[i] = def
	}
	m.store.Scan(0, ext, func(i int, v V) bool {
		out[i] = v
		return true
	})
	return out
}

// ToNested exports all cells as a fresh Rows()×Cols() nested slice.
// Complexity: O(rows*cols).
func (m *Matrix[V]) ToNested() [][]V {
	flat := m.ToFlat()
	out := make([][]V, m.rows)
	for r := 0; r < m.rows; r++ {
		out[r] = flat[r*m.cols : (r+1)*m.cols : (r+1)*m.cols]
	}
	return out
}

// Equal reports whether a and b have identical dimensions and identical
// cell values. Sparse extents and default values may differ as long as
// every cell reads back the same. Complexity: O(rows*cols).
func Equal[V comparable](a, b *Matrix[V]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	equal := true
	a.store.Scan(0, a.Size(), func(i int, v V) bool {
		w, err := b.store.Get(i)
		if err != nil || v != w {
			equal = false
			return false
		}
		return true
	})
	return equal
}
