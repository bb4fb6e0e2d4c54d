// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotcheck/internal/event"
	"github.com/javiermolinar/slotcheck/internal/session"
)

// StatusDuration is how long a status message stays visible.
const StatusDuration = 3 * time.Second

// EventAddedMsg is sent when the form input was stored.
type EventAddedMsg struct {
	Event *event.Event
}

// ValidationMsg is sent when the form input was rejected.
type ValidationMsg struct {
	Err error
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// ReportMsg carries a conflict report for the result box.
type ReportMsg struct {
	Report session.Report
}

// ScheduleMsg carries the sorted schedule for the result box.
type ScheduleMsg struct {
	Events []*event.Event
}

// AddEvent validates and stores one event.
func AddEvent(ctx context.Context, s *session.Session, name, start, end string) tea.Cmd {
	return func() tea.Msg {
		e, err := s.AddEvent(ctx, name, start, end)
		if err != nil {
			if event.IsValidation(err) {
				return ValidationMsg{Err: err}
			}
			return ErrMsg{Err: err}
		}
		return EventAddedMsg{Event: e}
	}
}

// LoadReport runs conflict detection on the session.
func LoadReport(ctx context.Context, s *session.Session) tea.Cmd {
	return func() tea.Msg {
		r, err := s.Report(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ReportMsg{Report: r}
	}
}

// LoadSchedule fetches the events sorted by start time.
func LoadSchedule(ctx context.Context, s *session.Session) tea.Cmd {
	return func() tea.Msg {
		events, err := s.Schedule(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}
		return ScheduleMsg{Events: events}
	}
}

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: err}
		}
		return StatusMsgCmd{Msg: "Copied to clipboard"}
	}
}

// ClearStatusAfter schedules a ClearStatusMsg.
func ClearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
