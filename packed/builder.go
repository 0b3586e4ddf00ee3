// SPDX-License-Identifier: MIT

package packed

// Builder accumulates writes into a not-yet-published store. It exists so
// construction loops (matrix transforms, maps, concatenation) can fill a
// buffer in place without paying a defensive copy per write; once Store
// is called the builder must not be written again.
type Builder[V comparable] struct {
	store *Store[V]
	done  bool
}

// NewBuilder creates a builder over a fresh store of the given length,
// every cell holding def. Returns ErrBadLength if length < 1.
// Complexity: O(length).
func NewBuilder[V comparable](length int, def V) (*Builder[V], error) {
	s, err := New(length, def)
	if err != nil {
		return nil, err
	}
	return &Builder[V]{store: s}, nil
}

// NewBuilderFrom creates a builder seeded with a deep copy of src, so a
// multi-write edit pays one copy instead of one per write.
// Complexity: O(src.Len()).
func NewBuilderFrom[V comparable](src *Store[V]) *Builder[V] {
	return &Builder[V]{store: src.Clone()}
}

// Write assigns v to cell i in place, raising the high-water mark to at
// least i+1. Returns ErrIndexOutOfRange on an invalid index.
// Complexity: O(1).
func (b *Builder[V]) Write(i int, v V) error {
	if b.done {
		panic("packed: Builder.Write after Store")
	}
	if i < 0 || i >= len(b.store.cells) {
		return ErrIndexOutOfRange
	}
	b.store.cells[i] = v
	if i+1 > b.store.extent {
		b.store.extent = i + 1
	}
	return nil
}

// MarkDense raises the high-water mark to the full length. Dense rewrites
// use it when every cell may now differ from the default, even cells the
// rewrite happened to assign the default value.
// Complexity: O(1).
func (b *Builder[V]) MarkDense() {
	if b.done {
		panic("packed: Builder.MarkDense after Store")
	}
	b.store.extent = len(b.store.cells)
}

// Store finalizes the builder and hands over exclusive ownership of the
// accumulated store. Any further Write panics (programmer error).
// Complexity: O(1).
func (b *Builder[V]) Store() *Store[V] {
	b.done = true
	return b.store
}
