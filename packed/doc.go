// Package packed implements a fixed-length, 0-indexed cell store with a
// configurable default value and a monotonic high-water mark.
//
// What:
//
//   - Store[V] holds length cells; any cell never explicitly written reads
//     back as the configured default.
//   - The high-water mark ("sparse extent") is one past the highest index
//     ever written. Every cell at or beyond it is guaranteed to hold the
//     default, which lets callers bound scans without touching trailing
//     cells.
//   - Reset restores the default at a position but never lowers the mark:
//     the extent is a conservative upper bound, not a count of non-default
//     cells.
//
// Why:
//
//   - matrix builds its dense and sparse traversals directly on Scan and
//     SparseExtent; the guarantee "i ≥ extent ⇒ cells[i] == default" is the
//     contract that makes skipping trailing cells safe.
//
// Mutation model:
//
//   - Set and Reset return a new Store; a Store handed out is never
//     mutated again. Builder exists for construction loops that own their
//     store exclusively and want in-place writes before publishing.
//
// Complexity:
//
//   - Get/Len/Default/SparseExtent: O(1).
//   - Set/Reset/Clone: O(length) (defensive copy).
//   - Scan/ScanReverse: O(to-from).
//
// Errors:
//
//   - ErrIndexOutOfRange: index ≥ length (or < 0).
//   - ErrBadLength: requested length < 1.
package packed
