// Package conflict detects overlapping events.
package conflict

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/javiermolinar/slotcheck/internal/event"
)

// ErrUnknownMode is returned by ParseMode for unsupported names.
var ErrUnknownMode = errors.New("detection mode must be 'adjacent' or 'sweep'")

// Pair is two conflicting events in sorted order.
type Pair struct {
	Earlier *event.Event
	Later   *event.Event
}

func (p Pair) String() string {
	return fmt.Sprintf("%s and %s", p.Earlier, p.Later)
}

// Mode selects the detection algorithm.
type Mode string

const (
	// ModeAdjacent compares each event only with its sorted neighbour.
	ModeAdjacent Mode = "adjacent"
	// ModeSweep compares each event against the latest end seen so far.
	ModeSweep Mode = "sweep"
)

// ParseMode converts a mode name to a Mode. Empty means ModeAdjacent.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(ModeAdjacent):
		return ModeAdjacent, nil
	case string(ModeSweep):
		return ModeSweep, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Detect runs the detection algorithm selected by m.
func (m Mode) Detect(events []*event.Event) []Pair {
	if m == ModeSweep {
		return DetectSweep(events)
	}
	return Detect(events)
}

// Sorted returns a copy of events ordered by start time.
// The sort is stable: events with equal starts keep their input order.
func Sorted(events []*event.Event) []*event.Event {
	sorted := slices.Clone(events)
	slices.SortStableFunc(sorted, func(a, b *event.Event) int {
		return int(a.Start - b.Start)
	})
	return sorted
}

// Detect reports overlaps between neighbours in start order.
//
// Only adjacent pairs are compared, so an event that overlaps a later,
// non-adjacent event is missed when the event in between ends first.
// With A 09:00-12:00, B 09:30-10:00 and C 10:30-11:00 only (A, B) is
// reported. Use DetectSweep to catch the (A, C) overlap as well.
func Detect(events []*event.Event) []Pair {
	sorted := Sorted(events)
	var conflicts []Pair
	for i := 0; i+1 < len(sorted); i++ {
		if sorted[i].End > sorted[i+1].Start {
			conflicts = append(conflicts, Pair{Earlier: sorted[i], Later: sorted[i+1]})
		}
	}
	return conflicts
}

// DetectSweep reports every event that starts before the latest end seen so
// far, paired with the event holding that end.
func DetectSweep(events []*event.Event) []Pair {
	sorted := Sorted(events)
	if len(sorted) == 0 {
		return nil
	}

	var conflicts []Pair
	reach := sorted[0]
	for _, e := range sorted[1:] {
		if reach.Overlaps(e) {
			conflicts = append(conflicts, Pair{Earlier: reach, Later: e})
		}
		if e.End > reach.End {
			reach = e
		}
	}
	return conflicts
}
