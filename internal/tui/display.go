package tui

import (
	"github.com/MKhiriev/go-rate-pair/models"
)

// pendingWrite is one programmatic field update requested by the synchronizer
// and not yet applied to a widget.
type pendingWrite struct {
	field models.FieldID
	text  string
}

// displayBuffer adapts the synchronizer's display channel to the Elm update
// cycle: writes issued during a service call are buffered here and drained
// into the textinput widgets right after the call returns.
type displayBuffer struct {
	pending []pendingWrite
}

func newDisplayBuffer() *displayBuffer {
	return &displayBuffer{}
}

func (d *displayBuffer) SetDisplayText(field models.FieldID, text string) {
	d.pending = append(d.pending, pendingWrite{field: field, text: text})
}

// Drain returns the buffered writes and empties the buffer.
func (d *displayBuffer) Drain() []pendingWrite {
	out := d.pending
	d.pending = nil
	return out
}
