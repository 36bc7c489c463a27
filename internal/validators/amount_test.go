package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ── syntactic checks ──────────────────────────────────────────────────────────

// TestAmountValidator_AcceptsDecimals verifies that plain and fractional
// decimal text passes without rules.
func TestAmountValidator_AcceptsDecimals(t *testing.T) {
	v := NewAmountValidator()
	for _, text := range []string{"1", "0", "1.12", "-3.5", "  42.00  ", "1e2"} {
		assert.NoError(t, v.Validate(text), "text %q", text)
	}
}

// TestAmountValidator_RejectsEmpty verifies that empty and all-space text
// yields ErrEmptyAmount.
func TestAmountValidator_RejectsEmpty(t *testing.T) {
	v := NewAmountValidator()
	assert.ErrorIs(t, v.Validate(""), ErrEmptyAmount)
	assert.ErrorIs(t, v.Validate("   "), ErrEmptyAmount)
}

// TestAmountValidator_RejectsGarbage verifies that non-numeric text yields
// ErrNotANumber.
func TestAmountValidator_RejectsGarbage(t *testing.T) {
	v := NewAmountValidator()
	for _, text := range []string{"abc", "1.2.3", "12f", "--1"} {
		assert.ErrorIs(t, v.Validate(text), ErrNotANumber, "text %q", text)
	}
}

// TestAmountValidator_SupportsStringPointer verifies *string input handling,
// including the nil pointer case.
func TestAmountValidator_SupportsStringPointer(t *testing.T) {
	v := NewAmountValidator()
	text := "7.5"
	assert.NoError(t, v.Validate(&text))

	var nilText *string
	assert.ErrorIs(t, v.Validate(nilText), ErrUnsupportedType)
}

// TestAmountValidator_RejectsUnsupportedType verifies that non-string values
// yield ErrUnsupportedType.
func TestAmountValidator_RejectsUnsupportedType(t *testing.T) {
	v := NewAmountValidator()
	assert.ErrorIs(t, v.Validate(42), ErrUnsupportedType)
}

// ── rule scoping ──────────────────────────────────────────────────────────────

// TestAmountValidator_RuleFinite verifies that the finite rule rejects NaN
// and infinity spellings that ParseFloat accepts.
func TestAmountValidator_RuleFinite(t *testing.T) {
	v := NewAmountValidator()
	assert.ErrorIs(t, v.Validate("NaN", RuleFinite), ErrNotFinite)
	assert.ErrorIs(t, v.Validate("+Inf", RuleFinite), ErrNotFinite)
	assert.NoError(t, v.Validate("1.12", RuleFinite))
}

// TestAmountValidator_RuleNonNegative verifies the non-negative rule.
func TestAmountValidator_RuleNonNegative(t *testing.T) {
	v := NewAmountValidator()
	assert.ErrorIs(t, v.Validate("-1", RuleNonNegative), ErrNegativeAmount)
	assert.NoError(t, v.Validate("0", RuleNonNegative))
}

// TestAmountValidator_UnknownRule verifies that unknown rule names yield
// ErrUnknownField.
func TestAmountValidator_UnknownRule(t *testing.T) {
	v := NewAmountValidator()
	assert.ErrorIs(t, v.Validate("1", "no-such-rule"), ErrUnknownField)
}
