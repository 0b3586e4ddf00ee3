// SPDX-License-Identifier: MIT

// Package packed: Store is the single flat backing buffer behind matrix.
// This file holds the immutable value surface; construction loops that
// need in-place writes use Builder (builder.go).
package packed

// Store is a fixed-length cell array with a default value and a monotonic
// high-water mark. The zero value is not usable; construct via New,
// FromSlice or Builder.
type Store[V comparable] struct {
	cells  []V // flat backing storage, len(cells) == length
	def    V   // value every unwritten cell reads back as
	extent int // one past the highest index ever written; 0 if none
}

// New creates a store of the given length with every cell holding def.
// The high-water mark starts at 0. Returns ErrBadLength if length < 1.
// Complexity: O(length).
func New[V comparable](length int, def V) (*Store[V], error) {
	if length < 1 {
		return nil, ErrBadLength
	}
	cells := make([]V, length)
	if def != *new(V) {
		for i := range cells {
			cells[i] = def
		}
	}
	return &Store[V]{cells: cells, def: def}, nil
}

// FromSlice creates a store of the given length whose first
// min(len(values), length) cells are copied from values, default-filling
// any remainder. The high-water mark is set to the copied count.
// Returns ErrBadLength if length < 1.
// Complexity: O(length).
func FromSlice[V comparable](values []V, length int, def V) (*Store[V], error) {
	s, err := New(length, def)
	if err != nil {
		return nil, err
	}
	n := copy(s.cells, values)
	s.extent = n
	return s, nil
}

// Len returns the fixed cell count. Complexity: O(1).
func (s *Store[V]) Len() int { return len(s.cells) }

// Default returns the configured default value. Complexity: O(1).
func (s *Store[V]) Default() V { return s.def }

// SparseExtent returns the high-water mark: one past the highest index
// ever explicitly written, or 0 if none. Every cell at or beyond the
// extent is guaranteed to hold the default. Complexity: O(1).
func (s *Store[V]) SparseExtent() int { return s.extent }

// Get returns the value at index i, or ErrIndexOutOfRange.
// Complexity: O(1).
func (s *Store[V]) Get(i int) (V, error) {
	if i < 0 || i >= len(s.cells) {
		var zero V
		return zero, ErrIndexOutOfRange
	}
	return s.cells[i], nil
}

// Set returns a new store where cell i holds v and the high-water mark is
// raised to at least i+1. The receiver is left untouched.
// Returns ErrIndexOutOfRange on an invalid index.
// Complexity: O(length).
func (s *Store[V]) Set(i int, v V) (*Store[V], error) {
	if i < 0 || i >= len(s.cells) {
		return nil, ErrIndexOutOfRange
	}
	out := s.Clone()
	out.cells[i] = v
	if i+1 > out.extent {
		out.extent = i + 1
	}
	return out, nil
}

// Reset returns a new store where cell i is restored to the default.
// The high-water mark is deliberately NOT lowered, even when i+1 equals
// the current mark: the extent stays a safe upper bound and downstream
// sparse traversals rely on it never shrinking.
// Complexity: O(length).
func (s *Store[V]) Reset(i int) (*Store[V], error) {
	if i < 0 || i >= len(s.cells) {
		return nil, ErrIndexOutOfRange
	}
	out := s.Clone()
	out.cells[i] = s.def
	return out, nil
}

// Clone returns a deep copy of the store. Complexity: O(length).
func (s *Store[V]) Clone() *Store[V] {
	cells := make([]V, len(s.cells))
	copy(cells, s.cells)
	return &Store[V]{cells: cells, def: s.def, extent: s.extent}
}

// Scan visits cells[from:to] in ascending index order, clamping the range
// to [0, Len()], and stops early when fn returns false.
// Complexity: O(to-from).
func (s *Store[V]) Scan(from, to int, fn func(i int, v V) bool) {
	if from < 0 {
		from = 0
	}
	if to > len(s.cells) {
		to = len(s.cells)
	}
	for i := from; i < to; i++ {
		if !fn(i, s.cells[i]) {
			return
		}
	}
}

// ScanReverse visits cells[from:to] in descending index order, clamping
// the range to [0, Len()], and stops early when fn returns false.
// Complexity: O(to-from).
func (s *Store[V]) ScanReverse(from, to int, fn func(i int, v V) bool) {
	if from < 0 {
		from = 0
	}
	if to > len(s.cells) {
		to = len(s.cells)
	}
	for i := to - 1; i >= from; i-- {
		if !fn(i, s.cells[i]) {
			return
		}
	}
}
