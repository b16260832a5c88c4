package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/tui/datepicker"
	"github.com/lancaster-music-hall/boxoffice/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	palette *theme.Palette

	// Frame
	AppStyle       lipgloss.Style
	TitleStyle     lipgloss.Style
	ScreenTab      lipgloss.Style
	ScreenTabOn    lipgloss.Style
	BookingTab     lipgloss.Style
	BookingTabOn   lipgloss.Style
	StatusStyle    lipgloss.Style
	ErrorStyle     lipgloss.Style
	MutedStyle     lipgloss.Style
	PanelStyle     lipgloss.Style
	PanelTitle     lipgloss.Style
	AccentText     lipgloss.Style
	ParagraphStyle lipgloss.Style

	// Forms
	LabelStyle        lipgloss.Style
	LabelFocusedStyle lipgloss.Style
	InputTextStyle    lipgloss.Style
	PlaceholderStyle  lipgloss.Style
	CursorStyle       lipgloss.Style
	ButtonStyle       lipgloss.Style
	ButtonFocused     lipgloss.Style
	ChoiceStyle       lipgloss.Style

	// Booking status badges
	PendingStyle  lipgloss.Style
	ApprovedStyle lipgloss.Style
	DeniedStyle   lipgloss.Style

	// Dialogs
	DialogStyle      lipgloss.Style
	DialogErrorStyle lipgloss.Style
	DialogTitle      lipgloss.Style
	DialogHint       lipgloss.Style
	BackdropColor    lipgloss.Color

	// Table
	TableHeader   lipgloss.Style
	TableCell     lipgloss.Style
	TableSelected lipgloss.Style

	Calendar datepicker.Styles
}

// NewStyles creates a Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	p := theme.NewPalette(t)
	base := lipgloss.NewStyle().Foreground(p.Fg)

	return &Styles{
		palette: p,

		AppStyle:       lipgloss.NewStyle().Background(p.Bg).Foreground(p.Fg),
		TitleStyle:     lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		ScreenTab:      base.Padding(0, 1).Foreground(p.FgMuted),
		ScreenTabOn:    base.Padding(0, 1).Background(p.Accent).Foreground(p.TextOnAccent).Bold(true),
		BookingTab:     base.Padding(0, 2).Background(p.BgHighlight).Foreground(p.FgMuted),
		BookingTabOn:   base.Padding(0, 2).Background(p.BgSelection).Foreground(p.Fg).Bold(true).Underline(true),
		StatusStyle:    base.Foreground(p.Accent),
		ErrorStyle:     base.Foreground(p.Danger).Bold(true),
		MutedStyle:     base.Foreground(p.FgMuted),
		PanelStyle:     base.Border(lipgloss.RoundedBorder()).BorderForeground(p.Accent).Padding(0, 1),
		PanelTitle:     base.Foreground(p.Accent).Bold(true),
		AccentText:     base.Foreground(p.Accent),
		ParagraphStyle: base,

		LabelStyle:        base.Foreground(p.FgMuted).Width(14),
		LabelFocusedStyle: base.Foreground(p.Accent).Bold(true).Width(14),
		InputTextStyle:    base,
		PlaceholderStyle:  base.Foreground(p.FgMuted),
		CursorStyle:       base.Foreground(p.Accent),
		ButtonStyle:       base.Padding(0, 2).Background(p.BgHighlight),
		ButtonFocused:     base.Padding(0, 2).Background(p.Accent).Foreground(p.TextOnAccent).Bold(true),
		ChoiceStyle:       base.Foreground(p.Accent).Bold(true),

		PendingStyle:  base.Foreground(p.Warning),
		ApprovedStyle: base.Foreground(p.Success),
		DeniedStyle:   base.Foreground(p.Danger),

		DialogStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Modal.Border).
			Background(p.Modal.Bg).
			Foreground(p.Modal.Text).
			Padding(1, 2),
		DialogErrorStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Danger).
			Background(p.Modal.Bg).
			Foreground(p.Modal.Text).
			Padding(1, 2),
		DialogTitle:   lipgloss.NewStyle().Foreground(p.Modal.Highlight).Background(p.Modal.Bg).Bold(true),
		DialogHint:    lipgloss.NewStyle().Foreground(p.Modal.Muted).Background(p.Modal.Bg),
		BackdropColor: p.Modal.Backdrop,

		TableHeader:   base.Foreground(p.Accent).Bold(true).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(p.FgMuted),
		TableCell:     base,
		TableSelected: base.Background(p.BgSelection).Bold(true),

		Calendar: datepicker.NewStyles(datepicker.Palette(p.Calendar)),
	}
}

// StatusBadge styles a booking status.
func (s *Styles) StatusBadge(status booking.Status) string {
	switch status {
	case booking.StatusApproved:
		return s.ApprovedStyle.Render(string(status))
	case booking.StatusDenied:
		return s.DeniedStyle.Render(string(status))
	default:
		return s.PendingStyle.Render(string(status))
	}
}
