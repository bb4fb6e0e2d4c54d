package session

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/slotcheck/internal/conflict"
	"github.com/javiermolinar/slotcheck/internal/event"
	"github.com/javiermolinar/slotcheck/internal/scheduler"
)

// Resolution is the suggestion for one conflicting event.
type Resolution struct {
	Event *event.Event
	Slot  scheduler.Slot
	OK    bool // false when no slot fits in working hours
}

// Report holds detected conflicts and one resolution per conflict.
type Report struct {
	Conflicts   []conflict.Pair
	Resolutions []Resolution
}

// HasConflicts returns true if any conflict was found.
func (r Report) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// BuildReport detects conflicts in events and suggests a slot for the later
// event of every pair.
func BuildReport(events []*event.Event, mode conflict.Mode, hours scheduler.WorkingHours) Report {
	sched := scheduler.New(hours)
	conflicts := mode.Detect(events)

	r := Report{
		Conflicts:   conflicts,
		Resolutions: make([]Resolution, 0, len(conflicts)),
	}
	for _, p := range conflicts {
		slot, ok := sched.Suggest(p.Later, events)
		r.Resolutions = append(r.Resolutions, Resolution{Event: p.Later, Slot: slot, OK: ok})
	}
	return r
}

// FormatReport renders a report as plain text.
func FormatReport(r Report) string {
	if !r.HasConflicts() {
		return "No conflicts detected in the schedule."
	}

	var b strings.Builder
	b.WriteString("Conflicting Events:\n")
	for _, p := range r.Conflicts {
		fmt.Fprintf(&b, "%s\n", p)
	}

	b.WriteString("\nSuggested Resolutions:\n")
	for _, res := range r.Resolutions {
		b.WriteString(FormatResolution(res))
		b.WriteString("\n")
	}
	return b.String()
}

// FormatResolution renders a single suggestion line.
func FormatResolution(res Resolution) string {
	if !res.OK {
		return fmt.Sprintf("No available slot for %s", res.Event.Name)
	}
	return fmt.Sprintf("Reschedule %s to Start: %s, End: %s", res.Event.Name, res.Slot.Start, res.Slot.End)
}

// FormatSchedule renders events in start order.
func FormatSchedule(events []*event.Event) string {
	var b strings.Builder
	b.WriteString("Sorted Schedule:\n")
	for _, e := range conflict.Sorted(events) {
		fmt.Fprintf(&b, "%s\n", e)
	}
	return b.String()
}
