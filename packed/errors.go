package packed

import "errors"

var (
	// ErrIndexOutOfRange indicates a cell index outside [0, Len()).
	// Public accessors (Get/Set/Reset) MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("packed: index out of range")

	// ErrBadLength indicates a requested store length below 1.
	ErrBadLength = errors.New("packed: length must be >= 1")
)
