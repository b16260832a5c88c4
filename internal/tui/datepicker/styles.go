package datepicker

import "github.com/charmbracelet/lipgloss"

// Palette is the set of colors the picker is drawn with.
type Palette struct {
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

// DefaultPalette is the Lancaster house palette.
func DefaultPalette() Palette {
	return Palette{
		HeaderBg:  "#4B0082",
		HeaderFg:  "#FFFFFF",
		WeekdayBg: "#5A1496",
		DayBg:     "#1A2530",
		WeekendBg: "#2D4155",
		Fg:        "#FFFFFF",
		Muted:     "#969696",
		Selected:  "#FF8C00",
		Today:     "#8A2BE2",
		Hover:     "#3E5C76",
	}
}

// Styles holds the lipgloss styles for each part of the picker.
type Styles struct {
	Header     lipgloss.Style
	Nav        lipgloss.Style
	Title      lipgloss.Style
	Weekday    lipgloss.Style
	Day        lipgloss.Style
	Weekend    lipgloss.Style
	OtherMonth lipgloss.Style
	Today      lipgloss.Style
	Selected   lipgloss.Style
	Hovered    lipgloss.Style

	YearTitle    lipgloss.Style
	Year         lipgloss.Style
	YearCurrent  lipgloss.Style
	YearSelected lipgloss.Style
	Close        lipgloss.Style
}

// DefaultStyles returns styles built from DefaultPalette.
func DefaultStyles() Styles {
	return NewStyles(DefaultPalette())
}

// NewStyles builds styles from p.
func NewStyles(p Palette) Styles {
	c := func(hex string) lipgloss.Color { return lipgloss.Color(hex) }
	day := lipgloss.NewStyle().Background(c(p.DayBg)).Foreground(c(p.Fg))

	return Styles{
		Header:     lipgloss.NewStyle().Background(c(p.HeaderBg)).Foreground(c(p.HeaderFg)),
		Nav:        lipgloss.NewStyle().Background(c(p.HeaderBg)).Foreground(c(p.HeaderFg)).Bold(true),
		Title:      lipgloss.NewStyle().Background(c(p.HeaderBg)).Foreground(c(p.HeaderFg)).Bold(true),
		Weekday:    lipgloss.NewStyle().Background(c(p.WeekdayBg)).Foreground(c(p.HeaderFg)).Bold(true),
		Day:        day,
		Weekend:    day.Background(c(p.WeekendBg)),
		OtherMonth: day.Foreground(c(p.Muted)),
		Today:      day.Background(c(p.Today)).Bold(true),
		Selected:   day.Background(c(p.Selected)).Foreground(c("#000000")).Bold(true),
		Hovered:    day.Background(c(p.Hover)),

		YearTitle:    lipgloss.NewStyle().Background(c(p.WeekdayBg)).Foreground(c(p.HeaderFg)).Bold(true),
		Year:         day,
		YearCurrent:  day.Background(c(p.Today)).Bold(true),
		YearSelected: day.Background(c(p.Selected)).Foreground(c("#000000")),
		Close:        lipgloss.NewStyle().Background(c(p.HeaderBg)).Foreground(c(p.HeaderFg)),
	}
}
