// SPDX-License-Identifier: MIT

// Package matrix: aggregate queries built on the traversal engine.
// All of them bound their scans by the sparse extent; the trailing
// guaranteed-default region is accounted for arithmetically (Sum) or via
// a seed value (Min/Max), never by iteration.
package matrix

import "cmp"

// extremum runs the shared Min/Max traversal. The accumulator is seeded
// with the default value standing in for the guaranteed-default trailing
// region; when no such region exists (fully written store) it is seeded
// from cell 0 instead, so the winner is always a realized cell. A visited
// value replaces the accumulator only when strictly better, which keeps
// the first occurrence on ties.
func extremum[V cmp.Ordered](m *Matrix[V], better func(candidate, best V) bool) (V, int) {
	best, bestIdx, from := m.Default(), m.SparseExtent(), 0
	if m.SparseExtent() == m.Size() {
		best, _ = m.store.Get(0)
		bestIdx, from = 0, 1
	}
	m.store.Scan(from, m.SparseExtent(), func(i int, v V) bool {
		if better(v, best) {
			best, bestIdx = v, i
		}
		return true
	})
	return best, bestIdx
}

// Min returns the smallest cell value. For a matrix with an unwritten
// trailing region the default value participates as a candidate.
// Complexity: O(SparseExtent()).
func Min[V cmp.Ordered](m *Matrix[V]) V {
	v, _ := extremum(m, func(candidate, best V) bool { return candidate < best })
	return v
}

// Max returns the largest cell value. Complexity: O(SparseExtent()).
func Max[V cmp.Ordered](m *Matrix[V]) V {
	v, _ := extremum(m, func(candidate, best V) bool { return candidate > best })
	return v
}

// ArgMin returns the position of the smallest cell value. On ties the
// earliest candidate wins; when the default value itself wins, the
// returned position is that of the first guaranteed-default cell.
// Complexity: O(SparseExtent()).
func ArgMin[V cmp.Ordered](m *Matrix[V]) Position {
	_, i := extremum(m, func(candidate, best V) bool { return candidate < best })
	return m.PositionOf(i)
}

// ArgMax returns the position of the largest cell value, with the same
// tie-break as ArgMin. Complexity: O(SparseExtent()).
func ArgMax[V cmp.Ordered](m *Matrix[V]) Position {
	_, i := extremum(m, func(candidate, best V) bool { return candidate > best })
	return m.PositionOf(i)
}

// Member reports whether any cell holds term.
//
// Fast path: when at least one cell is guaranteed default (the extent is
// below the size) and term equals the default, the answer is true with no
// scan at all. Otherwise a sparse scan short-circuits on the first match;
// cells at or beyond the extent cannot match a non-default term.
// Complexity: O(1) fast path, O(SparseExtent()) otherwise.
func Member[V comparable](m *Matrix[V], term V) bool {
	if m.SparseExtent() < m.Size() && term == m.Default() {
		return true
	}
	_, found := SparseFoldLeftUntil(m, false, func(_ int, v V, acc bool) Step[bool] {
		if v == term {
			return Stop(true)
		}
		return Continue(acc)
	})
	return found
}

// Find returns the position of the first cell (lowest flat index) holding
// term, or ErrNotFound. When term equals the default and a guaranteed-
// default region exists, the scan is bounded by the extent: an explicit
// match below the extent wins, otherwise the first guaranteed-default
// cell is the answer without visiting the trailing region.
// Complexity: O(SparseExtent()) when term is the default, O(rows*cols)
// worst case otherwise.
func Find[V comparable](m *Matrix[V], term V) (Position, error) {
	boundedToExtent := term == m.Default() && m.SparseExtent() < m.Size()

	fn := func(i int, v V, acc int) Step[int] {
		if v == term {
			return Stop(i)
		}
		return Continue(acc)
	}
	var (
		i       int
		stopped bool
	)
	if boundedToExtent {
		i, stopped = SparseFoldLeftUntil(m, -1, fn)
		if !stopped {
			// Nothing below the extent matched; the cell at the extent is
			// the first guaranteed default.
			return m.PositionOf(m.SparseExtent()), nil
		}
	} else {
		i, stopped = FoldLeftUntil(m, -1, fn)
		if !stopped {
			return Position{}, ErrNotFound
		}
	}
	return m.PositionOf(i), nil
}

// Sum returns the sum of all cells. Visited cells below the extent are
// accumulated directly; the elided trailing region contributes
// (Size()-SparseExtent()) * Default() without being iterated.
// Complexity: O(SparseExtent()).
func Sum[V Number](m *Matrix[V]) V {
	var sum V
	ext := m.SparseExtent()
	m.store.Scan(0, ext, func(_ int, v V) bool {
		sum += v
		return true
	})
	return sum + V(m.Size()-ext)*m.Default()
}

// Trace returns the sum of the main diagonal, Sum(Diagonal()).
// Returns ErrPositionOutOfBounds when the matrix has fewer rows than
// columns. Complexity: O(cols).
func Trace[V Number](m *Matrix[V]) (V, error) {
	d, err := m.Diagonal()
	if err != nil {
		var zero V
		return zero, err
	}
	return Sum(d), nil
}
