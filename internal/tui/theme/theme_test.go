package theme

import (
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		themeName string
		wantName  string
	}{
		{name: "load lancaster theme", themeName: "lancaster", wantName: "lancaster"},
		{name: "load mocha theme", themeName: "mocha", wantName: "mocha"},
		{name: "load latte theme", themeName: "latte", wantName: "latte"},
		{name: "case insensitive", themeName: "Latte", wantName: "latte"},
		{name: "empty name defaults to lancaster", themeName: "", wantName: "lancaster"},
		{name: "invalid theme falls back to lancaster", themeName: "nonexistent", wantName: "lancaster"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := Load(tt.themeName)
			if err != nil {
				t.Fatalf("Load(%q) unexpected error: %v", tt.themeName, err)
			}
			if theme.Name != tt.wantName {
				t.Errorf("Load(%q).Name = %q, want %q", tt.themeName, theme.Name, tt.wantName)
			}
		})
	}
}

func TestLoad_ThemeColors(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			theme, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%s) unexpected error: %v", name, err)
			}

			colors := map[string]string{
				"Bg":          theme.Bg,
				"BgHighlight": theme.BgHighlight,
				"BgSelection": theme.BgSelection,
				"Fg":          theme.Fg,
				"FgMuted":     theme.FgMuted,
				"Accent":      theme.Accent,
				"Header":      theme.Header,
				"Weekday":     theme.Weekday,
				"Today":       theme.Today,
				"Selected":    theme.Selected,
				"Weekend":     theme.Weekend,
				"Success":     theme.Success,
				"Warning":     theme.Warning,
				"Danger":      theme.Danger,
				"BaseBg":      theme.BaseBg,
				"ModalBorder": theme.ModalBorder,
				"TextPrimary": theme.TextPrimary,
				"TextMuted":   theme.TextMuted,
				"Highlight":   theme.Highlight,
			}

			for field, hex := range colors {
				if len(hex) != 7 || hex[0] != '#' {
					t.Errorf("theme.%s = %q, want #rrggbb", field, hex)
				}
			}
		})
	}
}

func TestLancasterMatchesHouseColors(t *testing.T) {
	theme, err := Load("lancaster")
	if err != nil {
		t.Fatal(err)
	}
	if theme.Header != "#4B0082" || theme.Selected != "#FF8C00" || theme.Weekend != "#2D4155" {
		t.Errorf("lancaster = %+v", theme)
	}
}

func TestApplyDefaults(t *testing.T) {
	theme := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Warning:     "#888888",
	}
	theme.applyDefaults()

	if theme.Header != theme.BgHighlight {
		t.Errorf("Header = %q, want BgHighlight", theme.Header)
	}
	if theme.Today != theme.Accent {
		t.Errorf("Today = %q, want Accent", theme.Today)
	}
	if theme.Selected != theme.Warning {
		t.Errorf("Selected = %q, want Warning", theme.Selected)
	}
	if theme.Weekend == "" || theme.Weekend == theme.Bg {
		t.Errorf("Weekend = %q, want a shade off Bg", theme.Weekend)
	}
	if theme.ModalBorder != theme.Accent || theme.TextPrimary != theme.Fg {
		t.Errorf("modal defaults not applied: %+v", theme.Modal())
	}
}

func TestAvailable(t *testing.T) {
	available := Available()
	expected := []string{"lancaster", "mocha", "latte"}
	if len(available) != len(expected) {
		t.Fatalf("Available() returned %d themes, want %d", len(available), len(expected))
	}
	for i, want := range expected {
		if available[i] != want {
			t.Errorf("Available()[%d] = %q, want %q", i, available[i], want)
		}
	}
}

func TestIsAvailable(t *testing.T) {
	tests := []struct {
		name     string
		theme    string
		expected bool
	}{
		{name: "exact match", theme: "lancaster", expected: true},
		{name: "case insensitive", theme: "Mocha", expected: true},
		{name: "dropped theme", theme: "frappe", expected: false},
		{name: "missing theme", theme: "unknown", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAvailable(tt.theme); got != tt.expected {
				t.Errorf("IsAvailable(%q) = %t, want %t", tt.theme, got, tt.expected)
			}
		})
	}
}

func TestColor(t *testing.T) {
	hex := "#89b4fa"
	if c := Color(hex); string(c) != hex {
		t.Errorf("Color(%q) = %q, want %q", hex, string(c), hex)
	}
}
