package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/slotcheck/internal/session"
	"github.com/javiermolinar/slotcheck/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.EventAddedMsg:
		cmd := m.resetForm()
		status := m.setStatus(fmt.Sprintf("Event '%s' added successfully!", msg.Event.Name), statusSuccess)
		return m, tea.Batch(cmd, status)

	case commands.ValidationMsg:
		m.logger.Debug("form rejected", zap.Error(msg.Err))
		return m, m.setStatus(validationText(msg.Err), statusError)

	case commands.ErrMsg:
		m.logger.Error("tui command failed", zap.Error(msg.Err))
		return m, m.setStatus(fmt.Sprintf("Error: %v", msg.Err), statusError)

	case commands.StatusMsgCmd:
		return m, m.setStatus(msg.Msg, statusInfo)

	case commands.ClearStatusMsg:
		if !m.nowFunc().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil

	case commands.ReportMsg:
		title := "No Conflicts"
		if msg.Report.HasConflicts() {
			title = "Conflicts Detected"
		}
		m.openBox(BoxReport, title, session.FormatReport(msg.Report))
		return m, nil

	case commands.ScheduleMsg:
		m.openBox(BoxSchedule, "Schedule", session.FormatSchedule(msg.Events))
		return m, nil
	}

	if m.mode == ModeForm {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

// setStatus shows text in the status line and schedules its removal.
func (m *Model) setStatus(text string, kind statusKind) tea.Cmd {
	m.statusMsg = text
	m.statusKind = kind
	m.statusTime = m.nowFunc().Add(commands.StatusDuration)
	return commands.ClearStatusAfter(commands.StatusDuration)
}
