package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/javiermolinar/slotcheck/internal/conflict"
	"github.com/javiermolinar/slotcheck/internal/event"
	"github.com/javiermolinar/slotcheck/internal/scheduler"
	"github.com/javiermolinar/slotcheck/internal/session"
)

// PrintReport writes a conflict report with the same lines as
// session.FormatReport, colored by kind.
func PrintReport(w io.Writer, r session.Report) {
	if !r.HasConflicts() {
		fmt.Fprintln(w, formatSuggestion("No conflicts detected in the schedule."))
		return
	}

	fmt.Fprintln(w, formatHeader("Conflicting Events:"))
	for _, p := range r.Conflicts {
		fmt.Fprintln(w, formatConflict(p.String()))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, formatHeader("Suggested Resolutions:"))
	for _, res := range r.Resolutions {
		line := session.FormatResolution(res)
		if res.OK {
			fmt.Fprintln(w, formatSuggestion(line))
		} else {
			fmt.Fprintln(w, formatWarning(line))
		}
	}
}

// PrintSchedule writes events in start order, marking the ones in a conflict.
func PrintSchedule(w io.Writer, events []*event.Event, conflicts []conflict.Pair) {
	fmt.Fprintln(w, formatHeader("Sorted Schedule:"))
	if len(events) == 0 {
		fmt.Fprintln(w, formatMuted("No events."))
		return
	}

	inConflict := make(map[*event.Event]bool, len(conflicts)*2)
	for _, p := range conflicts {
		inConflict[p.Earlier] = true
		inConflict[p.Later] = true
	}

	for _, e := range conflict.Sorted(events) {
		line := e.String()
		if inConflict[e] {
			fmt.Fprintf(w, "%s %s\n", line, formatConflict("!"))
			continue
		}
		fmt.Fprintln(w, line)
	}
}

// PrintSlot writes the suggestion for one event.
func PrintSlot(w io.Writer, e *event.Event, slot scheduler.Slot, ok bool) {
	res := session.Resolution{Event: e, Slot: slot, OK: ok}
	line := session.FormatResolution(res)
	if ok {
		fmt.Fprintf(w, "%s %s\n", formatSuggestion(line), formatMuted(fmt.Sprintf("(was %s-%s)", e.Start, e.End)))
		return
	}
	fmt.Fprintln(w, formatWarning(line))
}

// separator returns a horizontal rule sized to the terminal.
func separator() string {
	return formatMuted(strings.Repeat("─", min(termWidth(), 40)))
}
