package services

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/e-Xiua/admin-events-api/models"
)

// Patch is a caller-supplied partial set of field changes, keyed by the
// external field name. Values arrive untyped (JSON decoding).
type Patch map[string]interface{}

// Intent classifies what a patch means for the event's attendees.
type Intent string

const (
	IntentCancellation Intent = "CANCELLATION"
	IntentModification Intent = "MODIFICATION"
)

// NotificationCommand is a deferred instruction to notify one recipient of
// one event-state change. The engine produces commands; dispatching them is
// the caller's job.
type NotificationCommand struct {
	ID         string
	Recipient  string
	EventTitle string
	Intent     Intent
}

// Assignment is one validated field change ready to apply to an event.
type Assignment struct {
	Field string
	apply func(*models.Event)
}

// setter validates or coerces one raw patch value for its field. It returns
// a nil apply func (and nil error) when the value cannot inhabit the field
// and no coercion is defined: such entries are skipped, not rejected.
type setter func(value interface{}) (func(*models.Event), error)

// eventSetters enumerates every patchable field once, statically. Keys not
// present here are ignored by ValidatePatch. The active field is absent on
// purpose: its presence in a patch is handled by Reconcile before
// validation ever runs.
var eventSetters = map[string]setter{
	"title": textSetter(func(e *models.Event, s string) { e.Title = s }),
	"description": textSetter(func(e *models.Event, s string) {
		e.Description = s
	}),
	"color": textSetter(func(e *models.Event, s string) { e.Color = s }),
	"date": func(value interface{}) (func(*models.Event), error) {
		s, ok := value.(string)
		if !ok {
			return nil, ErrInvalidDateFormat
		}
		t, err := time.Parse(models.TimestampLayout, s)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		return func(e *models.Event) { e.Date = &t }, nil
	},
	"duration": integerSetter("duration", func(e *models.Event, n int64) {
		e.Duration = n
	}),
	"cost": integerSetter("cost", func(e *models.Event, n int64) {
		e.Cost = n
	}),
	"attendees": func(value interface{}) (func(*models.Event), error) {
		list, ok := toStringList(value)
		if !ok {
			return nil, nil
		}
		return func(e *models.Event) { e.Attendees = list }, nil
	},
	"category": func(value interface{}) (func(*models.Event), error) {
		s, ok := value.(string)
		if !ok {
			return nil, nil
		}
		return func(e *models.Event) { e.Category = models.Category(s) }, nil
	},
}

func textSetter(assign func(*models.Event, string)) setter {
	return func(value interface{}) (func(*models.Event), error) {
		s, ok := value.(string)
		if !ok {
			return nil, nil
		}
		return func(e *models.Event) { assign(e, s) }, nil
	}
}

// integerSetter coerces through the value's printed form, so "120",
// float64(120) and int(120) all land as 120 while "not-a-number",
// float64(1.5) and true all fail.
func integerSetter(field string, assign func(*models.Event, int64)) setter {
	return func(value interface{}) (func(*models.Event), error) {
		n, err := strconv.ParseInt(fmt.Sprint(value), 10, 64)
		if err != nil {
			return nil, &InvalidFieldValueError{Field: field}
		}
		return func(e *models.Event) { assign(e, n) }, nil
	}
}

func toStringList(value interface{}) (models.StringList, bool) {
	switch v := value.(type) {
	case []string:
		return models.StringList(v), true
	case models.StringList:
		return v, true
	case []interface{}:
		out := make(models.StringList, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}

// ValidatePatch turns a raw patch into an ordered list of typed assignments,
// or fails with the first invalid value. All-or-nothing: a single bad value
// rejects the whole patch. Unknown keys are ignored. Entries are checked in
// sorted key order so multi-error patches fail deterministically.
func ValidatePatch(patch Patch) ([]Assignment, error) {
	keys := make([]string, 0, len(patch))
	for key := range patch {
		if _, known := eventSetters[key]; known {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	assignments := make([]Assignment, 0, len(keys))
	for _, key := range keys {
		apply, err := eventSetters[key](patch[key])
		if err != nil {
			return nil, err
		}
		if apply == nil {
			continue
		}
		assignments = append(assignments, Assignment{Field: key, apply: apply})
	}
	return assignments, nil
}

// Reconcile applies a patch to an event and decides the notification
// fan-out. The presence of the "active" key, whatever its value, classifies
// the patch as a cancellation: the event is deactivated and every other key
// in the same patch is discarded. Any other patch is a modification:
// validated assignments are applied atomically. Either way one command per
// attendee is produced; no attendees, no commands.
func Reconcile(event *models.Event, patch Patch) (*models.Event, []NotificationCommand, error) {
	if _, ok := patch["active"]; ok {
		event.Active = false
		return event, notificationsFor(event, IntentCancellation), nil
	}

	assignments, err := ValidatePatch(patch)
	if err != nil {
		return nil, nil, err
	}
	for _, a := range assignments {
		a.apply(event)
	}
	return event, notificationsFor(event, IntentModification), nil
}

func notificationsFor(event *models.Event, intent Intent) []NotificationCommand {
	commands := make([]NotificationCommand, 0, len(event.Attendees))
	for _, recipient := range event.Attendees {
		commands = append(commands, NotificationCommand{
			ID:         uuid.NewString(),
			Recipient:  recipient,
			EventTitle: event.Title,
			Intent:     intent,
		})
	}
	return commands
}
