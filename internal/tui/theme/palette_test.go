package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestNewPalette_CalendarColors(t *testing.T) {
	theme, err := Load("lancaster")
	if err != nil {
		t.Fatal(err)
	}
	p := NewPalette(theme)

	if p.Calendar.HeaderBg != "#4B0082" {
		t.Errorf("HeaderBg = %q", p.Calendar.HeaderBg)
	}
	if p.Calendar.DayBg != theme.Bg || p.Calendar.WeekendBg != theme.Weekend {
		t.Errorf("day colors = %+v", p.Calendar)
	}
	if p.Calendar.HeaderFg != theme.Fg {
		t.Errorf("HeaderFg = %q, want the light text on a dark header", p.Calendar.HeaderFg)
	}
	if p.Calendar.Hover == theme.Bg || p.Calendar.Hover == "" {
		t.Errorf("Hover = %q, want a blend", p.Calendar.Hover)
	}
}

func TestNewPalette_ModalFallbacks(t *testing.T) {
	base := &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Warning:     "#ff00ff",
	}

	palette := NewPalette(base)
	if palette.Modal.Bg != lipgloss.Color(base.BgHighlight) {
		t.Fatalf("Modal.Bg = %q, want %q", palette.Modal.Bg, base.BgHighlight)
	}
	if palette.Modal.Border.Dark != base.Accent {
		t.Fatalf("Modal.Border.Dark = %q, want %q", palette.Modal.Border.Dark, base.Accent)
	}
	if palette.Modal.Backdrop != lipgloss.Color(base.BgSelection) {
		t.Fatalf("Modal.Backdrop = %q, want %q", palette.Modal.Backdrop, base.BgSelection)
	}
	if base.ModalBorder != "" {
		t.Error("NewPalette must not modify its argument")
	}
}

func TestNewPalette_NilUsesDefault(t *testing.T) {
	p := NewPalette(nil)
	if p.Calendar.HeaderBg != "#4B0082" {
		t.Errorf("HeaderBg = %q, want lancaster header", p.Calendar.HeaderBg)
	}
}

func TestBlendColors(t *testing.T) {
	tests := []struct {
		a, b  string
		ratio float64
		want  string
	}{
		{"#000000", "#ffffff", 0, "#000000"},
		{"#000000", "#ffffff", 1, "#ffffff"},
		{"#000000", "#ffffff", 0.5, "#7f7f7f"},
		{"#000000", "#ffffff", 2, "#ffffff"},
		{"bad", "#ffffff", 0.5, "bad"},
	}
	for _, tt := range tests {
		if got := blendColors(tt.a, tt.b, tt.ratio); got != tt.want {
			t.Errorf("blendColors(%q, %q, %v) = %q, want %q", tt.a, tt.b, tt.ratio, got, tt.want)
		}
	}
}

func TestIsLightTheme(t *testing.T) {
	if !isLightTheme("#eff1f5") {
		t.Error("latte background should be light")
	}
	if isLightTheme("#1A2530") {
		t.Error("lancaster background should be dark")
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}
