// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FieldID identifies one of the two linked amount fields of the converter.
type FieldID int

const (
	// FieldBase is the field holding the amount in the base currency.
	FieldBase FieldID = iota

	// FieldQuote is the field holding the amount in the quote currency.
	FieldQuote
)

// Counterpart returns the opposite field of the linked pair.
func (f FieldID) Counterpart() FieldID {
	if f == FieldBase {
		return FieldQuote
	}
	return FieldBase
}

// String returns a short label used in log entries.
func (f FieldID) String() string {
	if f == FieldBase {
		return "base"
	}
	return "quote"
}
