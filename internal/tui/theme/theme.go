// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// DefaultName is the theme used when none is configured.
const DefaultName = "lancaster"

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background, day cells
	BgHighlight string `toml:"bg_highlight"` // Panels, inactive tabs
	BgSelection string `toml:"bg_selection"` // Hover, table cursor
	Fg          string `toml:"fg"`
	FgMuted     string `toml:"fg_muted"` // Other-month days, hints
	Accent      string `toml:"accent"`   // Title, active tab, borders
	Header      string `toml:"header"`   // Calendar header bar
	Weekday     string `toml:"weekday"`  // Day-name row
	Today       string `toml:"today"`
	Selected    string `toml:"selected"`
	Weekend     string `toml:"weekend"`
	Success     string `toml:"success"` // Approved
	Warning     string `toml:"warning"` // Pending
	Danger      string `toml:"danger"`  // Denied, errors

	// Modal palette (can override base theme values)
	BaseBg      string `toml:"base_bg"`
	ModalBorder string `toml:"modal_border"`
	TextPrimary string `toml:"text_primary"`
	TextMuted   string `toml:"text_muted"`
	Highlight   string `toml:"highlight"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Unknown names fall back to the default theme.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = DefaultName
	}
	name = strings.ToLower(name)

	data, err := embeddedThemes.ReadFile("embedded/" + name + ".toml")
	if err != nil {
		if name != DefaultName {
			return Load(DefaultName)
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// ModalPalette provides the modal-specific colors derived from the theme.
type ModalPalette struct {
	BaseBg      string
	ModalBorder string
	TextPrimary string
	TextMuted   string
	Highlight   string
}

// Modal returns the modal palette.
func (t *Theme) Modal() ModalPalette {
	return ModalPalette{
		BaseBg:      t.BaseBg,
		ModalBorder: t.ModalBorder,
		TextPrimary: t.TextPrimary,
		TextMuted:   t.TextMuted,
		Highlight:   t.Highlight,
	}
}

func (t *Theme) applyDefaults() {
	light := isLightTheme(t.Bg)
	if t.Header == "" {
		t.Header = coalesce(t.BgHighlight, t.Accent)
	}
	if t.Weekday == "" {
		if light {
			t.Weekday = blendColors(t.Header, "#000000", 0.06)
		} else {
			t.Weekday = blendColors(t.Header, "#ffffff", 0.08)
		}
	}
	if t.Weekend == "" {
		t.Weekend = blendColors(t.Bg, t.Fg, 0.08)
	}
	if t.Today == "" {
		t.Today = t.Accent
	}
	if t.Selected == "" {
		t.Selected = coalesce(t.Warning, t.Accent)
	}
	if t.BaseBg == "" {
		t.BaseBg = coalesce(t.BgHighlight, t.Bg)
	}
	if t.ModalBorder == "" {
		t.ModalBorder = t.Accent
	}
	if t.TextPrimary == "" {
		t.TextPrimary = t.Fg
	}
	if t.TextMuted == "" {
		t.TextMuted = t.FgMuted
	}
	if t.Highlight == "" {
		t.Highlight = coalesce(t.BgSelection, t.Accent)
	}
}

func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"lancaster", "mocha", "latte"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
