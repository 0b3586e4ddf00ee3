// SPDX-License-Identifier: MIT

// Package matrix: the external iteration protocol. Seq presents a matrix
// as a lazy sequence of its cells in flat row-major order; Reduce is a
// pull-based fold whose step function steers the traversal with one of
// three commands per element: Cont, Suspend or Halt. Suspension yields a
// resumable continuation, so external consumers can interleave several
// matrices' traversals without this package knowing about any of them.
package matrix

// command discriminates the reducer signals.
type command uint8

const (
	cmdCont command = iota
	cmdSuspend
	cmdHalt
)

// Command is the verdict of one Reduce step.
type Command[A any] struct {
	acc  A
	kind command
}

// Cont carries acc to the next element.
func Cont[A any](acc A) Command[A] { return Command[A]{acc: acc} }

// Suspend pauses the traversal after the current element, yielding a
// continuation that resumes exactly where it left off.
func Suspend[A any](acc A) Command[A] { return Command[A]{acc: acc, kind: cmdSuspend} }

// Halt stops the traversal immediately, discarding remaining elements.
func Halt[A any](acc A) Command[A] { return Command[A]{acc: acc, kind: cmdHalt} }

// ReduceState reports how a reduction ended.
type ReduceState uint8

const (
	// ReduceDone means every element was consumed.
	ReduceDone ReduceState = iota
	// ReduceHalted means the step function issued Halt.
	ReduceHalted
	// ReduceSuspended means the step function issued Suspend; Resume
	// continues the traversal.
	ReduceSuspended
)

// Reduction is the outcome of Reduce: the final (or intermediate)
// accumulator plus the state that produced it. A suspended reduction
// carries its continuation.
type Reduction[A any] struct {
	Acc    A
	State  ReduceState
	resume func(A) Reduction[A]
}

// Resume continues a suspended reduction with a fresh accumulator,
// picking up at the element after the one that triggered Suspend.
// Returns ErrNotSuspended when the reduction already ran to completion
// or was halted.
func (r Reduction[A]) Resume(acc A) (Reduction[A], error) {
	if r.State != ReduceSuspended || r.resume == nil {
		var zero Reduction[A]
		return zero, ErrNotSuspended
	}
	return r.resume(acc), nil
}

// Seq is a lazy sequence view over a matrix's cells in flat row-major
// order. It holds no traversal state of its own; all state lives in the
// Reduction values.
type Seq[V comparable] struct {
	m *Matrix[V]
}

// Seq returns the sequence view of the matrix.
func (m *Matrix[V]) Seq() Seq[V] { return Seq[V]{m: m} }

// Count returns the number of elements, Size(). Complexity: O(1).
func (s Seq[V]) Count() int { return s.m.Size() }

// Contains reports whether term occurs in the sequence; it delegates to
// Member and shares its default-value fast path.
func (s Seq[V]) Contains(term V) bool { return Member(s.m, term) }

// Slice eagerly materializes the contiguous run of length elements
// starting at start, truncated at the end of the sequence. Returns
// ErrIndexOutOfRange when start is outside [0, Count()) or length is
// negative. Complexity: O(length).
func (s Seq[V]) Slice(start, length int) ([]V, error) {
	if start < 0 || start >= s.m.Size() || length < 0 {
		return nil, ErrIndexOutOfRange
	}
	end := start + length
	if end > s.m.Size() {
		end = s.m.Size()
	}
	out := make([]V, 0, end-start)
	s.m.store.Scan(start, end, func(_ int, v V) bool {
		out = append(out, v)
		return true
	})
	return out, nil
}

// Reduce folds the sequence with a steerable step function. Each element
// is passed to fn along with the running accumulator; fn answers with
// Cont to proceed, Suspend to pause (the Reduction then carries a
// continuation), or Halt to stop for good.
// Complexity: O(Count()) across a full run, however it is split.
func Reduce[V comparable, A any](s Seq[V], init A, fn func(v V, acc A) Command[A]) Reduction[A] {
	return reduceFrom(s.m, 0, init, fn)
}

// reduceFrom drives the traversal starting at flat index from. Suspension
// captures the next index in a closure; resuming is always
// caller-initiated and happens-before any further use of the result.
func reduceFrom[V comparable, A any](m *Matrix[V], from int, acc A, fn func(v V, acc A) Command[A]) Reduction[A] {
	for i := from; i < m.Size(); i++ {
		v, err := m.store.Get(i)
		if err != nil {
			panic(err) // unreachable: i is loop-bounded
		}
		c := fn(v, acc)
		acc = c.acc
		switch c.kind {
		case cmdHalt:
			return Reduction[A]{Acc: acc, State: ReduceHalted}
		case cmdSuspend:
			next := i + 1
			return Reduction[A]{
				Acc:   acc,
				State: ReduceSuspended,
				resume: func(a A) Reduction[A] {
					return reduceFrom(m, next, a, fn)
				},
			}
		}
	}
	return Reduction[A]{Acc: acc, State: ReduceDone}
}
