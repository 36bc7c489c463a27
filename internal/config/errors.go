package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] and
// [ClientConfig.validate] when required configuration groups are incomplete
// or invalid.
var (
	// ErrInvalidConverterRate indicates a degenerate conversion rate
	// (zero, NaN, or infinite) for which the inverse conversion is undefined.
	ErrInvalidConverterRate = errors.New("invalid converter rate")
	// ErrInvalidConverterPrecision indicates a display precision outside the
	// supported 0..8 range.
	ErrInvalidConverterPrecision = errors.New("invalid converter precision")
	// ErrInvalidConverterCurrencies indicates a missing base or quote
	// currency label.
	ErrInvalidConverterCurrencies = errors.New("invalid converter currencies")
)
