package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const appTitle = "Event Scheduler and Conflict Detector"

// View renders the form, with the result box on top when one is open.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	base := m.renderForm()
	if m.mode == ModeBox && m.boxKind != BoxNone {
		return m.overlay.Render(base, m.width, m.height, m.renderBox())
	}
	return base
}

func (m Model) renderForm() string {
	var b strings.Builder

	b.WriteString(m.styles.TitleStyle.Render(appTitle))
	b.WriteString("\n\n")

	rows := make([]string, 0, fieldCount)
	for i := range m.inputs {
		label := m.styles.LabelStyle
		box := m.styles.InputStyle
		if i == m.focus && m.mode == ModeForm {
			label = m.styles.LabelFocusedStyle
			box = m.styles.InputFocusedStyle
		}
		row := lipgloss.JoinHorizontal(lipgloss.Center,
			label.Render(fieldLabels[i]),
			box.Render(m.inputs[i].View()),
		)
		rows = append(rows, row)
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n\n")

	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.styles.HelpStyle.Render(ansi.Truncate(msgHelpForm, m.width, "…")))

	return b.String()
}

func (m Model) renderStatus() string {
	if m.statusMsg == "" {
		return ""
	}
	text := ansi.Truncate(m.statusMsg, max(m.width-2, 1), "…")
	switch m.statusKind {
	case statusSuccess:
		return m.styles.StatusSuccessStyle.Render(text)
	case statusError:
		return m.styles.StatusErrorStyle.Render(text)
	default:
		return m.styles.StatusStyle.Render(text)
	}
}

// renderBox renders the open result box with its lines colored by kind.
func (m Model) renderBox() string {
	var b strings.Builder

	b.WriteString(m.styles.BoxTitleStyle.Render(m.boxTitle))
	b.WriteString("\n\n")

	section := ""
	for i, line := range splitLines(m.boxText) {
		if i > 0 {
			b.WriteString("\n")
		}
		style := m.styles.BoxBodyStyle
		switch {
		case line == "Conflicting Events:" || line == "Suggested Resolutions:" || line == "Sorted Schedule:":
			section = line
			style = style.Bold(true)
		case strings.HasPrefix(line, "Reschedule "):
			style = m.styles.SuggestionStyle
		case strings.HasPrefix(line, "No available slot"):
			style = m.styles.WarningStyle
		case section == "Conflicting Events:" && line != "":
			style = m.styles.ConflictStyle
		}
		b.WriteString(style.Render(line))
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.BoxFooterStyle.Render(msgHelpBox))

	return m.styles.BoxStyle.Render(b.String())
}
