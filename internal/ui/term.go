package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
)

// Color definitions for consistent styling across the CLI.
var (
	colorPending  = color.New(color.FgYellow)
	colorApproved = color.New(color.FgGreen, color.Bold)
	colorDenied   = color.New(color.FgRed)
	colorHeader   = color.New(color.Bold)
	colorAccent   = color.New(color.FgMagenta)
	colorMuted    = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// isTerminal reports whether fd is an interactive terminal.
func isTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatStatus(s booking.Status) string {
	switch s {
	case booking.StatusApproved:
		return colorApproved.Sprint(string(s))
	case booking.StatusDenied:
		return colorDenied.Sprint(string(s))
	default:
		return colorPending.Sprint(string(s))
	}
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatAccent(s string) string {
	return colorAccent.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
