package validators

import (
	"math"
	"strconv"
	"strings"
)

// Rule name constants used to specify which checks should be applied.
// These constants are passed to Validate to restrict validation to a subset
// of rules (rule-level scoping). With no rules given, only the syntactic
// checks run.
const (
	// RuleFinite requires the parsed amount to be a finite number
	// (rejects NaN and ±Inf spellings accepted by strconv.ParseFloat).
	RuleFinite = "finite"

	// RuleNonNegative requires the parsed amount to be zero or positive.
	RuleNonNegative = "non-negative"
)

// AmountValidator implements the Validator interface for the raw text of an
// amount field. It accepts a string (or *string) and checks that the text
// parses as a decimal number.
//
// A validation failure on user-typed text is an expected, recoverable
// condition for callers: the converter simply withholds the reciprocal
// update until the text is parseable again.
type AmountValidator struct{}

// NewAmountValidator returns a ready-to-use *AmountValidator.
func NewAmountValidator() *AmountValidator {
	return &AmountValidator{}
}

// Validate checks the raw amount text. The value must be a string or a
// *string; any other type yields ErrUnsupportedType. Unknown rule names
// yield ErrUnknownField.
func (v *AmountValidator) Validate(value any, rules ...string) error {
	var text string
	switch tv := value.(type) {
	case string:
		text = tv
	case *string:
		if tv == nil {
			return ErrUnsupportedType
		}
		text = *tv
	default:
		return ErrUnsupportedType
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyAmount
	}

	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return ErrNotANumber
	}

	for _, rule := range rules {
		switch rule {
		case RuleFinite:
			if math.IsNaN(parsed) || math.IsInf(parsed, 0) {
				return ErrNotFinite
			}
		case RuleNonNegative:
			if parsed < 0 {
				return ErrNegativeAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
