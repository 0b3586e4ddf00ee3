package snapshot

import "errors"

var (
	// ErrBadMagic indicates the input does not begin with the container
	// magic; it is not a snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")

	// ErrBadVersion indicates a container format version this build does
	// not understand.
	ErrBadVersion = errors.New("snapshot: unsupported format version")

	// ErrUnknownCodec indicates the header names a codec with no
	// built-in implementation.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")

	// ErrUnknownCompression indicates the header names a compression
	// scheme with no built-in implementation.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")

	// ErrCorrupted indicates the decoded payload violates its own
	// structural invariants (dimensions, extent, cell count).
	ErrCorrupted = errors.New("snapshot: corrupted payload")
)
