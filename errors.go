package uuid25

import "errors"

var (
	// ErrParse indicates that a string does not match any supported UUID
	// textual format, or violates the grammar of the requested format.
	ErrParse = errors.New("uuid25: could not parse a UUID string")

	// ErrInvalidLength indicates that a UUID byte slice has incorrect length
	// (expected 16 bytes).
	ErrInvalidLength = errors.New("uuid25: invalid UUID length (expected 16 bytes)")
)
