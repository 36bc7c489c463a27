package service

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/go-rate-pair/internal/logger"
	"github.com/MKhiriev/go-rate-pair/internal/utils"
	"github.com/MKhiriev/go-rate-pair/internal/validators"
	"github.com/MKhiriev/go-rate-pair/models"
)

type fieldState struct {
	rawText      string
	activeEditor bool
}

type fieldSync struct {
	converter ConvertService
	validator validators.Validator
	log       *logger.Logger

	fields    [2]fieldState
	hasActive bool
	active    models.FieldID

	// lastWritten holds, per field, the text of the most recent programmatic
	// write. A change notification carrying exactly that text is an echo of
	// our own write, not a user edit, and is consumed without conversion.
	lastWritten [2]string

	display DisplayWriter
	closed  bool
}

// NewFieldSyncService creates the bidirectional field synchronizer on top of
// the given conversion pair. The service is inert until the host registers a
// DisplayWriter and marks an active editor.
func NewFieldSyncService(converter ConvertService, validator validators.Validator, log *logger.Logger) FieldSyncService {
	sessionID := utils.NewUUIDGenerator().Generate()
	sessionLog := log.GetChildLogger()
	sessionLog.Logger = sessionLog.With().Str("sync_session", sessionID).Logger()

	return &fieldSync{
		converter: converter,
		validator: validator,
		log:       sessionLog,
	}
}

// RegisterDisplay implements FieldSyncService.
func (s *fieldSync) RegisterDisplay(w DisplayWriter) {
	if s.closed {
		return
	}
	s.display = w
}

// SetActiveEditor implements FieldSyncService. At most one field is the
// active editor at any instant; marking one field demotes the other.
func (s *fieldSync) SetActiveEditor(field models.FieldID) {
	if s.closed {
		return
	}

	s.fields[field].activeEditor = true
	s.fields[field.Counterpart()].activeEditor = false
	s.hasActive = true
	s.active = field
	s.log.Debug().Stringer("field", field).Msg("active editor changed")
}

// ActiveEditor implements FieldSyncService.
func (s *fieldSync) ActiveEditor() (models.FieldID, bool) {
	return s.active, s.hasActive
}

// SetInitialValue implements FieldSyncService. The seed is written through
// the display channel and remembered as a programmatic write, so a host that
// echoes it back does not trigger a conversion cascade.
func (s *fieldSync) SetInitialValue(field models.FieldID, text string) {
	if s.closed {
		return
	}

	s.writeDisplay(field, text)
	s.log.Debug().Stringer("field", field).Str("text", text).Msg("initial value seeded")
}

// OnFieldChanged implements FieldSyncService.
//
// Processing order is the loop-breaking policy itself:
//  1. consume echoes of our own programmatic writes;
//  2. drop changes from anything but the active editor;
//  3. silently ignore unparseable text;
//  4. convert, format, and silently write the counterpart field.
//
// The write in step 4 is terminal: it does not alter active-editor state and
// is never treated as a new user edit.
func (s *fieldSync) OnFieldChanged(field models.FieldID, text string) {
	if s.closed {
		return
	}

	if s.lastWritten[field] != "" && text == s.lastWritten[field] {
		s.lastWritten[field] = ""
		s.fields[field].rawText = text
		s.log.Debug().Stringer("field", field).Msg("echoed write suppressed")
		return
	}

	// a real user edit voids any pending echo marker for this field
	s.lastWritten[field] = ""
	s.fields[field].rawText = text

	if !s.fields[field].activeEditor {
		s.log.Debug().Stringer("field", field).Msg("change from passive field ignored")
		return
	}

	if err := s.validator.Validate(text, validators.RuleFinite); err != nil {
		s.log.Debug().Stringer("field", field).Err(err).Msg("unparseable amount, update withheld")
		return
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return
	}

	var converted float64
	if field == models.FieldBase {
		converted = s.converter.Forward(value)
	} else {
		converted = s.converter.Inverse(value)
	}

	formatted := s.converter.Format(converted)
	other := field.Counterpart()
	if s.fields[other].rawText == formatted {
		// counterpart already shows the right text, don't disturb it
		return
	}

	s.writeDisplay(other, formatted)
	s.log.Debug().
		Stringer("from", field).
		Stringer("to", other).
		Float64("value", value).
		Str("result", formatted).
		Msg("reciprocal field updated")
}

// FieldText implements FieldSyncService.
func (s *fieldSync) FieldText(field models.FieldID) string {
	return s.fields[field].rawText
}

// Close implements FieldSyncService. It releases the display registration
// and turns all further operations into no-ops. Idempotent.
func (s *fieldSync) Close() {
	if s.closed {
		return
	}

	s.closed = true
	s.display = nil
	s.log.Debug().Msg("field synchronizer closed")
}

func (s *fieldSync) writeDisplay(field models.FieldID, text string) {
	s.fields[field].rawText = text
	s.lastWritten[field] = text
	if s.display != nil {
		s.display.SetDisplayText(field, text)
	}
}
