// Package event defines the core domain types for slotcheck.
package event

import (
	"fmt"

	"github.com/google/uuid"
)

// Event is a named same-day time interval. Events are immutable once created.
type Event struct {
	ID    string // internal identity, the name is only a label
	Name  string
	Start Clock
	End   Clock
}

// New creates a new Event with validation.
// start and end must be in HH:MM format, with end after start.
func New(name, start, end string) (*Event, error) {
	s, err := ParseClock(start)
	if err != nil {
		return nil, &ValidationError{Field: "start", Value: start, Err: err}
	}

	e, err := ParseClock(end)
	if err != nil {
		return nil, &ValidationError{Field: "end", Value: end, Err: err}
	}

	return FromClocks(name, s, e)
}

// FromClocks creates an Event from already parsed clocks.
func FromClocks(name string, start, end Clock) (*Event, error) {
	if !start.Valid() {
		return nil, &ValidationError{Field: "start", Value: start.String(), Err: ErrInvalidTimeFormat}
	}
	if !end.Valid() {
		return nil, &ValidationError{Field: "end", Value: end.String(), Err: ErrInvalidTimeFormat}
	}
	if end <= start {
		return nil, &ValidationError{
			Field: "range",
			Value: start.String() + "-" + end.String(),
			Err:   ErrEndBeforeStart,
		}
	}

	return &Event{
		ID:    uuid.NewString(),
		Name:  name,
		Start: start,
		End:   end,
	}, nil
}

// Duration returns the event duration in minutes.
func (e *Event) Duration() int {
	return e.End.Sub(e.Start)
}

// Overlaps returns true if the two events share at least one minute.
func (e *Event) Overlaps(other *Event) bool {
	if other == nil {
		return false
	}
	return e.Start < other.End && other.Start < e.End
}

func (e *Event) String() string {
	return fmt.Sprintf("%s: %s - %s", e.Name, e.Start, e.End)
}
