// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the business logic of the converter client: the
// pure conversion pair linking the two amount fields, and the bidirectional
// field synchronizer that keeps them numerically consistent while the user
// types.
package service

import "github.com/MKhiriev/go-rate-pair/models"

// ConvertService is the pure conversion pair linking the base and quote
// fields. Forward and Inverse satisfy round(Inverse(Forward(x))) == x within
// the configured display precision.
type ConvertService interface {
	// Forward converts a base-currency amount into the quote currency.
	Forward(x float64) float64

	// Inverse converts a quote-currency amount back into the base currency.
	Inverse(y float64) float64

	// Round rounds v to the configured display precision.
	Round(v float64) float64

	// Format rounds v and renders it as fixed-point text
	// (e.g. "1.12" at precision 2).
	Format(v float64) string

	// Rate returns the configured base-to-quote rate.
	Rate() float64

	// Precision returns the configured number of decimal places.
	Precision() int
}

// FieldSyncService keeps the two linked amount fields numerically consistent
// under the conversion relationship, while preserving natural text-editing
// behavior on the field the user is actively editing.
//
// All methods must be called from a single goroutine (the UI event loop);
// the service holds no locks.
type FieldSyncService interface {
	// RegisterDisplay attaches the host's display writer. Programmatic
	// field updates are delivered through it. The registration is released
	// by Close.
	RegisterDisplay(w DisplayWriter)

	// SetActiveEditor records which field is currently treated as the
	// authoritative source for conversion triggers. Called on focus gain.
	SetActiveEditor(field models.FieldID)

	// ActiveEditor reports the current active editor, if any.
	ActiveEditor() (models.FieldID, bool)

	// SetInitialValue performs a one-time seeding write that bypasses the
	// active-editor guard and does not cascade into a conversion.
	SetInitialValue(field models.FieldID, text string)

	// OnFieldChanged processes a change notification for a field. Only the
	// active editor's changes propagate; unparseable text is silently
	// ignored; the reciprocal write never re-triggers synchronization.
	OnFieldChanged(field models.FieldID, text string)

	// FieldText returns the current raw text of a field as tracked by the
	// synchronizer.
	FieldText(field models.FieldID) string

	// Close releases the display registration and disables further
	// synchronization. Safe to call multiple times.
	Close()
}

// DisplayWriter is the silent-write primitive the host UI must provide: a
// programmatic update of a field's displayed text that is not treated as a
// user-originated change event.
type DisplayWriter interface {
	SetDisplayText(field models.FieldID, text string)
}
