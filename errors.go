package srfft

import "errors"

// Sentinel errors returned by the transform constructors and helpers.
var (
	// ErrUnsupportedSize is returned when the transform length is not a power
	// of two in [MinSize, MaxSize].
	ErrUnsupportedSize = errors.New("srfft: unsupported transform size")

	// ErrLengthMismatch is returned when a slice passed to a helper does not
	// match the transformer's length.
	ErrLengthMismatch = errors.New("srfft: slice length mismatch")
)
