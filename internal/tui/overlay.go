package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	overlayMinWidth  = 24
	overlayMinHeight = 5
	overlayMargin    = 2 // Columns of backdrop around the content
)

// OverlayModel draws a box over base content, centered, on a solid backdrop.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an overlay model.
func NewOverlayModel() OverlayModel {
	return OverlayModel{bgColor: lipgloss.Color("")}
}

// Active reports whether the overlay is visible.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetBackground updates the overlay background color.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render draws content on top of base. Lines wider than the terminal are
// truncated.
func (o OverlayModel) Render(base string, width, height int, content string) string {
	if !o.active || width <= 0 || height <= 0 {
		return base
	}

	contentLines := splitLines(content)
	boxW, boxH := o.boxSize(contentLines, width, height)
	if boxW <= 0 || boxH <= 0 {
		return base
	}

	top := max((height-boxH)/2, 0)
	left := max((width-boxW)/2, 0)

	baseLines := normalizeLines(base, width, height)
	boxLines := o.boxLines(contentLines, boxW, boxH)

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH {
			lines = append(lines, baseLines[row])
			continue
		}
		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+boxW, width)
		lines = append(lines, leftSlice+boxLines[row-top]+rightSlice)
	}

	return strings.Join(lines, "\n")
}

// boxSize fits the content plus margin, clamped to the terminal.
func (o OverlayModel) boxSize(content []string, width, height int) (int, int) {
	contentW, contentH := contentSize(content)
	boxW := max(contentW+2*overlayMargin, overlayMinWidth)
	boxH := max(contentH+2, overlayMinHeight)
	return min(boxW, width), min(boxH, height)
}

func (o OverlayModel) boxLines(content []string, width, height int) []string {
	bgSeq := o.bgSeq()
	blank := bgSeq + strings.Repeat(" ", width) + ansi.ResetStyle

	lines := make([]string, height)
	for i := range lines {
		lines[i] = blank
	}

	contentW, contentH := contentSize(content)
	contentW = min(contentW, width)
	contentH = min(contentH, height)
	top := max((height-contentH)/2, 0)
	left := max((width-contentW)/2, 0)

	for i := 0; i < contentH; i++ {
		line := ansi.Truncate(content[i], contentW, "…")
		if w := lipgloss.Width(line); w < contentW {
			line += strings.Repeat(" ", contentW-w)
		}
		if bgSeq != "" {
			line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
		}
		rightPad := max(width-left-contentW, 0)
		lines[top+i] = bgSeq + strings.Repeat(" ", left) + line + bgSeq + strings.Repeat(" ", rightPad) + ansi.ResetStyle
	}

	return lines
}

func (o OverlayModel) bgSeq() string {
	if o.bgColor == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.bgColor))).String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func contentSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}
	return maxWidth, len(lines)
}

// normalizeLines pads or cuts base to exactly width x height cells.
func normalizeLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}
