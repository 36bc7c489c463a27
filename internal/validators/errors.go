package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyAmount    = errors.New("amount text is empty")
	ErrNotANumber     = errors.New("amount text is not a decimal number")
	ErrNotFinite      = errors.New("amount is not a finite number")
	ErrNegativeAmount = errors.New("amount is negative")
)
