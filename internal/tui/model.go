// Package tui provides the terminal user interface for slotcheck.
package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/javiermolinar/slotcheck/internal/config"
	"github.com/javiermolinar/slotcheck/internal/session"
	"github.com/javiermolinar/slotcheck/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeForm Mode = iota
	ModeBox       // A result box is shown over the form
)

// BoxKind identifies the content of the result box.
type BoxKind int

const (
	BoxNone BoxKind = iota
	BoxReport
	BoxSchedule
)

// Form fields, in focus order.
const (
	fieldName = iota
	fieldStart
	fieldEnd
	fieldCount
)

const labelWidth = 20

var fieldLabels = [fieldCount]string{
	fieldName:  "Event Name:",
	fieldStart: "Start Time (HH:MM):",
	fieldEnd:   "End Time (HH:MM):",
}

var fieldPlaceholders = [fieldCount]string{
	fieldName:  "Standup",
	fieldStart: "09:00",
	fieldEnd:   "09:15",
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusSuccess
	statusError
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	ctx     context.Context
	session *session.Session
	config  *config.Config
	logger  *zap.Logger

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Form state
	inputs [fieldCount]textinput.Model
	focus  int
	mode   Mode

	// Result box state
	boxKind  BoxKind
	boxTitle string
	boxText  string // Plain text, also what gets copied
	overlay  OverlayModel

	// Messages
	statusMsg  string
	statusKind statusKind
	statusTime time.Time

	// Terminal dimensions
	width  int
	height int

	nowFunc func() time.Time
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithLogger sets the logger for key presses and mode changes.
func WithLogger(l *zap.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithContext sets the context passed to session calls.
func WithContext(ctx context.Context) ModelOption {
	return func(m *Model) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// New creates a new TUI model.
func New(s *session.Session, cfg *config.Config, opts ...ModelOption) *Model {
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Embedded themes failed to parse; render without colors.
		t = &theme.Theme{Name: theme.DefaultName}
	}
	styles := NewStyles(t)

	m := &Model{
		ctx:     context.Background(),
		session: s,
		config:  cfg,
		logger:  zap.NewNop(),
		theme:   t,
		styles:  styles,
		mode:    ModeForm,
		overlay: NewOverlayModel(),
		nowFunc: time.Now,
	}

	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = fieldPlaceholders[i]
		in.CharLimit = 64
		in.Width = 30
		in.Prompt = ""
		in.TextStyle = styles.InputTextStyle
		in.PlaceholderStyle = styles.PlaceholderStyle
		in.Cursor.Style = styles.CursorStyle
		in.Cursor.TextStyle = styles.InputTextStyle
		if i != fieldName {
			in.CharLimit = 5
		}
		m.inputs[i] = in
	}
	m.inputs[fieldName].Focus()

	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Run starts the TUI on the terminal and blocks until it exits.
func Run(ctx context.Context, s *session.Session, cfg *config.Config, logger *zap.Logger) error {
	m := New(s, cfg, WithLogger(logger), WithContext(ctx))
	m.logger.Debug("tui started", zap.String("theme", m.theme.Name))

	p := tea.NewProgram(*m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	if _, err := p.Run(); err != nil {
		// Interrupted by the caller's context: not a failure.
		if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
			m.logger.Debug("tui cancelled", zap.Error(m.ctx.Err()))
			return nil
		}
		return fmt.Errorf("running tui: %w", err)
	}

	m.logger.Debug("tui stopped")
	return nil
}

func modeString(mode Mode) string {
	switch mode {
	case ModeForm:
		return "form"
	case ModeBox:
		return "box"
	default:
		return "unknown"
	}
}

func (m Model) logKeyPress(msg tea.KeyMsg) {
	m.logger.Debug("key press",
		zap.String("key", msg.String()),
		zap.String("mode", modeString(m.mode)),
		zap.Int("focus", m.focus),
	)
}

func (m Model) logModeChange(from, to Mode, reason string) {
	m.logger.Debug("mode change",
		zap.String("from", modeString(from)),
		zap.String("to", modeString(to)),
		zap.String("reason", reason),
	)
}
