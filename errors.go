package sigpad

import "errors"

// Sentinel errors surfaced at the package boundary. Match with errors.Is.
var (
	// ErrInvalidDimensions reports a negative render width or height.
	// Zero is not an error: the renderer treats it as an empty bitmap.
	ErrInvalidDimensions = errors.New("sigpad: invalid dimensions")

	// ErrNonFinitePoint reports NaN or infinite pointer coordinates.
	// They are rejected at the input boundary so the geometry below
	// stays total.
	ErrNonFinitePoint = errors.New("sigpad: point coordinates must be finite")

	// ErrBitmapTooLarge reports a requested bitmap whose pixel buffer
	// would exceed the allocation cap. No partial bitmap is returned.
	ErrBitmapTooLarge = errors.New("sigpad: bitmap too large")
)
