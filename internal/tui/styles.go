package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/slotcheck/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg     lipgloss.Color
	colorAccent lipgloss.Color

	// Title bar
	TitleStyle lipgloss.Style

	// Form
	LabelStyle        lipgloss.Style
	LabelFocusedStyle lipgloss.Style
	InputStyle        lipgloss.Style
	InputFocusedStyle lipgloss.Style
	InputTextStyle    lipgloss.Style
	PlaceholderStyle  lipgloss.Style
	CursorStyle       lipgloss.Style

	// Status line
	StatusStyle        lipgloss.Style
	StatusSuccessStyle lipgloss.Style
	StatusErrorStyle   lipgloss.Style

	// Help line
	HelpStyle lipgloss.Style

	// Result box
	BoxStyle        lipgloss.Style
	BoxTitleStyle   lipgloss.Style
	BoxBodyStyle    lipgloss.Style
	BoxFooterStyle  lipgloss.Style
	ConflictStyle   lipgloss.Style
	SuggestionStyle lipgloss.Style
	WarningStyle    lipgloss.Style
	BoxBackdrop     lipgloss.Color
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)

	s := &Styles{
		colorBg:     p.Bg,
		colorAccent: p.Accent,
		BoxBackdrop: p.Modal.Bg,
	}

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextOnAccent).
		Background(p.Accent).
		Padding(0, 1)

	s.LabelStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted).
		Width(labelWidth)

	s.LabelFocusedStyle = s.LabelStyle.
		Foreground(p.Fg).
		Bold(true)

	s.InputStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.BgSelection).
		Padding(0, 1)

	s.InputFocusedStyle = s.InputStyle.
		BorderForeground(p.Focus)

	s.InputTextStyle = lipgloss.NewStyle().Foreground(p.Fg)
	s.PlaceholderStyle = lipgloss.NewStyle().Foreground(p.FgMuted)
	s.CursorStyle = lipgloss.NewStyle().Foreground(p.Accent)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(p.Fg).
		Padding(0, 1)

	s.StatusSuccessStyle = s.StatusStyle.
		Foreground(p.TextOnSuggestion).
		Background(p.SuggestionBg)

	s.StatusErrorStyle = s.StatusStyle.
		Foreground(p.TextOnConflict).
		Background(p.ConflictBg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(p.FgMuted)

	s.BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Modal.Border).
		Background(p.Modal.Bg).
		Padding(1, 2)

	s.BoxTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Accent).
		Background(p.Modal.Bg)

	s.BoxBodyStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Text).
		Background(p.Modal.Bg)

	s.BoxFooterStyle = lipgloss.NewStyle().
		Foreground(p.Modal.Muted).
		Background(p.Modal.Bg)

	s.ConflictStyle = s.BoxBodyStyle.Foreground(p.Conflict)
	s.SuggestionStyle = s.BoxBodyStyle.Foreground(p.Suggestion)
	s.WarningStyle = s.BoxBodyStyle.Foreground(p.Warning)

	return s
}
