// SPDX-License-Identifier: MIT

// Package matrix: the traversal engine. Four fold orderings (dense and
// sparse, ascending and descending), early-exit variants built on an
// explicit Continue/Stop step type, and the two map rewrites.
//
// Folds are package-level functions rather than methods because the
// accumulator type A is independent of the element type V and Go methods
// cannot introduce new type parameters.
//
// The sparse variants visit only indices below SparseExtent(): every
// skipped index is known to hold the default. Indices below the extent
// are visited unconditionally, including cells whose value happens to
// equal the default: the extent is a conservative watermark, not an
// exact non-default count.
package matrix

// Step is the verdict of one early-exit fold iteration: either carry the
// accumulator forward or stop the traversal where it stands.
type Step[A any] struct {
	acc  A
	stop bool
}

// Continue carries acc into the next iteration.
func Continue[A any](acc A) Step[A] { return Step[A]{acc: acc} }

// Stop ends the traversal immediately with acc as the final result.
func Stop[A any](acc A) Step[A] { return Step[A]{acc: acc, stop: true} }

// FoldLeft visits every index 0..Size()-1 ascending, threading
// acc = fn(index, value, acc). Complexity: O(rows*cols).
func FoldLeft[V comparable, A any](m *Matrix[V], init A, fn func(i int, v V, acc A) A) A {
	acc := init
	m.store.Scan(0, m.Size(), func(i int, v V) bool {
		acc = fn(i, v, acc)
		return true
	})
	return acc
}

// FoldRight visits every index Size()-1..0 descending.
// Complexity: O(rows*cols).
func FoldRight[V comparable, A any](m *Matrix[V], init A, fn func(i int, v V, acc A) A) A {
	acc := init
	m.store.ScanReverse(0, m.Size(), func(i int, v V) bool {
		acc = fn(i, v, acc)
		return true
	})
	return acc
}

// SparseFoldLeft visits only indices below SparseExtent(), ascending.
// Complexity: O(SparseExtent()).
func SparseFoldLeft[V comparable, A any](m *Matrix[V], init A, fn func(i int, v V, acc A) A) A {
	acc := init
	m.store.Scan(0, m.SparseExtent(), func(i int, v V) bool {
		acc = fn(i, v, acc)
		return true
	})
	return acc
}

// SparseFoldRight visits only indices below SparseExtent(), descending.
// Complexity: O(SparseExtent()).
func SparseFoldRight[V comparable, A any](m *Matrix[V], init A, fn func(i int, v V, acc A) A) A {
	acc := init
	m.store.ScanReverse(0, m.SparseExtent(), func(i int, v V) bool {
		acc = fn(i, v, acc)
		return true
	})
	return acc
}

// FoldLeftUntil is the early-exit dense fold: the step function decides
// per cell whether to Continue or Stop. The returned bool reports whether
// the traversal stopped early. This replaces non-local control flow for
// short-circuiting searches; no panic/recover involved.
// Complexity: O(rows*cols) worst case.
func FoldLeftUntil[V comparable, A any](m *Matrix[V], init A, fn func(i int, v V, acc A) Step[A]) (A, bool) {
	acc, stopped := init, false
	m.store.Scan(0, m.Size(), func(i int, v V) bool {
		step := fn(i, v, acc)
		acc = step.acc
		stopped = step.stop
		return !step.stop
	})
	return acc, stopped
}

// SparseFoldLeftUntil is the early-exit sparse fold, bounded by
// SparseExtent(). Complexity: O(SparseExtent()) worst case.
func SparseFoldLeftUntil[V comparable, A any](m *Matrix[V], init A, fn func(i int, v V, acc A) Step[A]) (A, bool) {
	acc, stopped := init, false
	m.store.Scan(0, m.SparseExtent(), func(i int, v V) bool {
		step := fn(i, v, acc)
		acc = step.acc
		stopped = step.stop
		return !step.stop
	})
	return acc, stopped
}

// Map returns a new matrix where every cell i holds fn(i, old value).
// The rewrite is dense: every index is visited and the result's sparse
// extent is the full size, because any cell may now differ from the
// default. Complexity: O(rows*cols).
func Map[V comparable](m *Matrix[V], fn func(i int, v V) V) *Matrix[V] {
	b := mustBuilder(m.Size(), m.Default())
	m.store.Scan(0, m.Size(), func(i int, v V) bool {
		if err := b.Write(i, fn(i, v)); err != nil {
			panic(err) // unreachable: i is loop-bounded
		}
		return true
	})
	b.MarkDense()
	return &Matrix[V]{store: b.Store(), rows: m.rows, cols: m.cols}
}

// SparseMap returns a new matrix where fn is applied only to indices
// below SparseExtent(); trailing default cells are left untouched and the
// extent is unchanged. Complexity: O(SparseExtent()).
func SparseMap[V comparable](m *Matrix[V], fn func(i int, v V) V) *Matrix[V] {
	b := mustBuilder(m.Size(), m.Default())
	m.store.Scan(0, m.SparseExtent(), func(i int, v V) bool {
		if err := b.Write(i, fn(i, v)); err != nil {
			panic(err) // unreachable: i is loop-bounded
		}
		return true
	})
	return &Matrix[V]{store: b.Store(), rows: m.rows, cols: m.cols}
}
