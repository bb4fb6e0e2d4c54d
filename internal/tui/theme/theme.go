// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// DefaultName is the theme used when none is configured or the name is unknown.
const DefaultName = "mocha"

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds the colors of one TUI theme.
//
// Conflict marks overlapping events and errors, Suggestion marks
// proposed slots and success, Warning marks events with no slot.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`
	BgHighlight string `toml:"bg_highlight"`
	BgSelection string `toml:"bg_selection"`
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"`
	Accent      string `toml:"accent"`
	Conflict    string `toml:"conflict"`
	Suggestion  string `toml:"suggestion"`
	Warning     string `toml:"warning"`
	Focus       string `toml:"focus"`

	// Result box colors. Empty values are derived from the base colors.
	BaseBg      string `toml:"base_bg"`
	ModalBorder string `toml:"modal_border"`
	TextPrimary string `toml:"text_primary"`
	TextMuted   string `toml:"text_muted"`
	Highlight   string `toml:"highlight"`
}

type catalog struct {
	byName map[string]Theme
	names  []string
}

// loadCatalog parses every embedded theme once.
var loadCatalog = sync.OnceValues(func() (*catalog, error) {
	return parseCatalog(embeddedThemes)
})

func parseCatalog(fsys fs.FS) (*catalog, error) {
	files, err := fs.Glob(fsys, "embedded/*.toml")
	if err != nil {
		return nil, fmt.Errorf("listing themes: %w", err)
	}

	c := &catalog{byName: make(map[string]Theme, len(files))}
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("reading theme %s: %w", file, err)
		}
		var t Theme
		if err := toml.Unmarshal(data, &t); err != nil {
			return nil, fmt.Errorf("parsing theme %s: %w", file, err)
		}
		name := strings.TrimSuffix(path.Base(file), ".toml")
		if t.Name == "" {
			t.Name = name
		}
		c.byName[name] = t.withDefaults()
		c.names = append(c.names, name)
	}
	slices.Sort(c.names)
	return c, nil
}

// Load returns the named theme. Unknown or empty names yield DefaultName.
func Load(name string) (*Theme, error) {
	c, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	t, ok := c.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		t, ok = c.byName[DefaultName]
		if !ok {
			return nil, fmt.Errorf("default theme %q is not embedded", DefaultName)
		}
	}
	return &t, nil
}

// Available returns the embedded theme names in sorted order.
func Available() []string {
	c, err := loadCatalog()
	if err != nil {
		return nil
	}
	return slices.Clone(c.names)
}

// withDefaults fills the result box colors from the base colors.
func (t Theme) withDefaults() Theme {
	t.Focus = coalesce(t.Focus, t.Accent)
	t.BaseBg = coalesce(t.BaseBg, t.BgHighlight, t.Bg)
	t.ModalBorder = coalesce(t.ModalBorder, t.Accent)
	t.TextPrimary = coalesce(t.TextPrimary, t.Fg)
	t.TextMuted = coalesce(t.TextMuted, t.FgMuted)
	t.Highlight = coalesce(t.Highlight, t.BgSelection, t.Accent)
	return t
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
