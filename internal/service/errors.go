package service

import "errors"

var (
	// ErrInvalidRate indicates a zero or non-finite conversion rate, for
	// which the inverse conversion is undefined. This is a configuration
	// precondition checked at setup time, never per keystroke.
	ErrInvalidRate = errors.New("conversion rate must be a non-zero finite number")

	// ErrInvalidPrecision indicates a display precision outside 0..8.
	ErrInvalidPrecision = errors.New("precision must be between 0 and 8")
)
