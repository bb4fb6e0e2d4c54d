package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/slotcheck/internal/event"
	"github.com/javiermolinar/slotcheck/internal/tui/commands"
)

// Status line texts.
const (
	msgInvalidTime   = "Invalid time format. Please use HH:MM."
	msgEndBeforeTime = "End time must be after start time."
	msgHelpForm      = "tab next • enter add • ctrl+d conflicts • ctrl+s schedule • esc quit"
	msgHelpBox       = "y copy • esc close"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.logKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeBox:
		return m.handleBoxKeys(msg)
	default:
		return m.handleFormKeys(msg)
	}
}

// handleFormKeys handles keys while editing the form.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, tea.Quit

	case "tab", "down":
		return m, m.setFocus((m.focus + 1) % fieldCount)

	case "shift+tab", "up":
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)

	case "enter":
		if m.focus < fieldEnd {
			return m, m.setFocus(m.focus + 1)
		}
		return m, m.submit()

	case "ctrl+a":
		return m, m.submit()

	case "ctrl+d":
		return m, commands.LoadReport(m.ctx, m.session)

	case "ctrl+s":
		return m, commands.LoadSchedule(m.ctx, m.session)
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// handleBoxKeys handles keys while a result box is shown.
func (m Model) handleBoxKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "enter":
		m.closeBox("dismissed")
		return m, nil
	case "y":
		return m, commands.CopyToClipboard(m.boxText)
	}
	return m, nil
}

// setFocus moves keyboard focus to field i.
func (m *Model) setFocus(i int) tea.Cmd {
	if i < 0 || i >= fieldCount {
		return nil
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

// submit sends the form values to the session.
func (m Model) submit() tea.Cmd {
	name := strings.TrimSpace(m.inputs[fieldName].Value())
	start := strings.TrimSpace(m.inputs[fieldStart].Value())
	end := strings.TrimSpace(m.inputs[fieldEnd].Value())
	return commands.AddEvent(m.ctx, m.session, name, start, end)
}

// resetForm clears the inputs and focuses the name field.
func (m *Model) resetForm() tea.Cmd {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	return m.setFocus(fieldName)
}

func (m *Model) openBox(kind BoxKind, title, text string) {
	from := m.mode
	m.mode = ModeBox
	m.boxKind = kind
	m.boxTitle = title
	m.boxText = text
	m.overlay.active = true
	m.overlay.SetBackground(m.styles.BoxBackdrop)
	m.logModeChange(from, m.mode, title)
}

func (m *Model) closeBox(reason string) {
	from := m.mode
	m.mode = ModeForm
	m.boxKind = BoxNone
	m.boxTitle = ""
	m.boxText = ""
	m.overlay.active = false
	m.logModeChange(from, m.mode, reason)
}

// validationText maps a rejected input to the status line text.
func validationText(err error) string {
	if errors.Is(err, event.ErrEndBeforeStart) {
		return msgEndBeforeTime
	}
	return msgInvalidTime
}
