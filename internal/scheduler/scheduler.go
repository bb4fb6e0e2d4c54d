// Package scheduler suggests replacement slots within working hours.
package scheduler

import (
	"github.com/javiermolinar/slotcheck/internal/event"
)

// WorkingHours is the window suggested slots must fit in.
type WorkingHours struct {
	DayStart event.Clock
	DayEnd   event.Clock
}

// ParseWorkingHours parses a "HH:MM" pair into WorkingHours.
// A window where dayStart is not before dayEnd is accepted; it simply never
// fits a slot.
func ParseWorkingHours(dayStart, dayEnd string) (WorkingHours, error) {
	s, err := event.ParseClock(dayStart)
	if err != nil {
		return WorkingHours{}, &event.ValidationError{Field: "day_start", Value: dayStart, Err: err}
	}
	e, err := event.ParseClock(dayEnd)
	if err != nil {
		return WorkingHours{}, &event.ValidationError{Field: "day_end", Value: dayEnd, Err: err}
	}
	return WorkingHours{DayStart: s, DayEnd: e}, nil
}

func (w WorkingHours) String() string {
	return w.DayStart.String() + "-" + w.DayEnd.String()
}

// Slot is a suggested interval.
type Slot struct {
	Start event.Clock
	End   event.Clock
}

func (s Slot) String() string {
	return s.Start.String() + "-" + s.End.String()
}

// Scheduler suggests slots inside a fixed working-hours window.
type Scheduler struct {
	hours WorkingHours
}

// New creates a new Scheduler for the given working hours.
func New(hours WorkingHours) *Scheduler {
	return &Scheduler{hours: hours}
}

// Hours returns the configured working hours.
func (s *Scheduler) Hours() WorkingHours {
	return s.hours
}

// Suggest proposes a slot for e with the same duration.
//
// The slot starts at the latest end among existing events that finished at or
// before e started, or at day start when that is later or no such event
// exists. It is returned only if it ends by day end. The slot is not checked
// against other events, so it may overlap one.
func (s *Scheduler) Suggest(e *event.Event, existing []*event.Event) (Slot, bool) {
	if e == nil {
		return Slot{}, false
	}

	latestEnd := s.hours.DayStart
	for _, other := range existing {
		if other == nil || other.End > e.Start {
			continue
		}
		if other.End > latestEnd {
			latestEnd = other.End
		}
	}

	start := max(s.hours.DayStart, latestEnd)
	if !s.CanFit(start, e.Duration()) {
		return Slot{}, false
	}
	return Slot{Start: start, End: start.Add(e.Duration())}, true
}

// CanFit returns true if a block of the given duration (in minutes) starting
// at start ends by day end.
func (s *Scheduler) CanFit(start event.Clock, durationMinutes int) bool {
	if start < s.hours.DayStart {
		return false
	}
	return start.Add(durationMinutes) <= s.hours.DayEnd
}

// Suggest is a convenience wrapper around Scheduler.Suggest.
func Suggest(e *event.Event, existing []*event.Event, hours WorkingHours) (Slot, bool) {
	return New(hours).Suggest(e, existing)
}
