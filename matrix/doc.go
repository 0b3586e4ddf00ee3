// Package matrix provides a two-dimensional matrix abstraction over a
// single flat, default-value-compressed cell store.
//
// What:
//
//   - Matrix[V] wraps a packed.Store with rows/columns and a row-major
//     position↔index mapping.
//   - Any cell never explicitly written reads back as the configured
//     default value; the store's high-water mark ("sparse extent") bounds
//     the region that can differ from the default.
//   - Dense and sparse traversals (folds, maps), aggregate queries
//     (Min/Max/ArgMin/ArgMax/Sum/Member/Find), structural transforms
//     (Transpose, flips, Concat, DropRow/DropColumn, Diagonal, Identity)
//     and elementary linear algebra (Add, Hadamard, Dot) all build on that
//     bound so trailing default cells are skipped, not visited.
//   - Seq presents a matrix as a lazy sequence with a resumable Reduce
//     protocol (Cont/Suspend/Halt).
//
// Why:
//
//   - Grids, score tables and adjacency-style data are often mostly one
//     value; bounding every scan by the sparse extent makes folds and
//     searches proportional to the written prefix, not the full size.
//
// Mutation model:
//
//   - Every mutating operation returns a new *Matrix; a matrix handed to
//     a caller is never modified afterwards, so concurrent readers of the
//     same value need no locking.
//
// Errors:
//
//   - ErrPositionOutOfBounds: (row, col) outside declared dimensions.
//   - ErrIndexOutOfRange: raw store index beyond length.
//   - ErrShapeMismatch: operand dimensions incompatible.
//   - ErrInvalidDimension: dimension would become degenerate, or a
//     row/column index is out of range.
//   - ErrNotFound: Find with no match (a normal negative result).
//
// See the examples in this package for usage patterns.
package matrix
