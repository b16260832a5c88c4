package theme

import (
	"math"

	"github.com/charmbracelet/lipgloss"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Success     lipgloss.Color
	Warning     lipgloss.Color
	Danger      lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnHeader  lipgloss.Color
	TextOnSuccess lipgloss.Color
	TextOnDanger  lipgloss.Color

	Calendar CalendarColors
	Modal    ModalColors
}

// CalendarColors are the hex strings the date picker is drawn with.
type CalendarColors struct {
	HeaderBg  string
	HeaderFg  string
	WeekdayBg string
	DayBg     string
	WeekendBg string
	Fg        string
	Muted     string
	Selected  string
	Today     string
	Hover     string
}

// ModalColors holds modal-specific colors derived from a Theme.
type ModalColors struct {
	Bg        lipgloss.Color
	Border    lipgloss.AdaptiveColor
	Text      lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Backdrop  lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load(DefaultName)
	}
	filled := *t
	filled.applyDefaults()
	t = &filled

	hover := blendColors(t.Bg, coalesce(t.BgSelection, t.Accent), 0.7)
	modal := t.Modal()

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Success:     lipgloss.Color(t.Success),
		Warning:     lipgloss.Color(t.Warning),
		Danger:      lipgloss.Color(t.Danger),

		TextOnAccent:  lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnHeader:  lipgloss.Color(chooseTextColor(t.Header, t.Bg, t.Fg)),
		TextOnSuccess: lipgloss.Color(chooseTextColor(t.Success, t.Bg, t.Fg)),
		TextOnDanger:  lipgloss.Color(chooseTextColor(t.Danger, t.Bg, t.Fg)),

		Calendar: CalendarColors{
			HeaderBg:  t.Header,
			HeaderFg:  chooseTextColor(t.Header, t.Bg, t.Fg),
			WeekdayBg: t.Weekday,
			DayBg:     t.Bg,
			WeekendBg: t.Weekend,
			Fg:        t.Fg,
			Muted:     t.FgMuted,
			Selected:  t.Selected,
			Today:     t.Today,
			Hover:     hover,
		},

		Modal: ModalColors{
			Bg:        lipgloss.Color(modal.BaseBg),
			Border:    adaptiveColor(modal.ModalBorder),
			Text:      adaptiveColor(modal.TextPrimary),
			Muted:     adaptiveColor(modal.TextMuted),
			Highlight: adaptiveColor(modal.Highlight),
			Backdrop:  lipgloss.Color(coalesce(t.BgSelection, t.BgHighlight, t.Bg)),
		},
	}
}

func isLightTheme(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// parseHex parses a 2-character hex string into an integer.
func parseHex(s string, v *int) {
	var val int
	for i := 0; i < len(s); i++ {
		val *= 16
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	*v = val
}

func rgb(hex string) (r, g, b int, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	parseHex(hex[1:3], &r)
	parseHex(hex[3:5], &g)
	parseHex(hex[5:7], &b)
	return r, g, b, true
}

// formatHexColor formats RGB values as a hex color string.
func formatHexColor(r, g, b int) string {
	const hex = "0123456789abcdef"
	return string([]byte{'#', hex[r>>4], hex[r&0xf], hex[g>>4], hex[g&0xf], hex[b>>4], hex[b&0xf]})
}

func adaptiveColor(hex string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Dark: hex, Light: hex}
}

// chooseTextColor picks whichever of the two candidates reads better on bg.
func chooseTextColor(bg, a, b string) string {
	if contrastRatio(bg, a) >= contrastRatio(bg, b) {
		return a
	}
	return b
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	r, g, b, ok := rgb(hex)
	if !ok {
		return 0
	}
	return 0.2126*srgbToLinear(r) + 0.7152*srgbToLinear(g) + 0.0722*srgbToLinear(b)
}

func srgbToLinear(c int) float64 {
	v := float64(c) / 255.0
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// blendColors mixes b into a by ratio (0 keeps a, 1 gives b).
func blendColors(a, b string, ratio float64) string {
	ar, ag, ab, okA := rgb(a)
	br, bg, bb, okB := rgb(b)
	if !okA || !okB {
		return a
	}
	ratio = math.Max(0, math.Min(1, ratio))

	mix := func(x, y int) int {
		return int(float64(x)*(1-ratio) + float64(y)*ratio)
	}
	return formatHexColor(mix(ar, br), mix(ag, bg), mix(ab, bb))
}
