package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// OverlayModel composites a dialog box over the rendered screen.
type OverlayModel struct {
	active  bool
	bgColor lipgloss.Color
}

// NewOverlayModel initializes an inactive overlay.
func NewOverlayModel() OverlayModel {
	return OverlayModel{bgColor: lipgloss.Color("")}
}

// Active reports whether the overlay is drawn.
func (o OverlayModel) Active() bool {
	return o.active
}

// SetActive shows or hides the overlay.
func (o *OverlayModel) SetActive(active bool) {
	o.active = active
}

// SetBackground sets the color used to pad dialog lines.
func (o *OverlayModel) SetBackground(color lipgloss.Color) {
	o.bgColor = color
}

// Render centers box on base, which is first normalised to width x height.
// Lines of base outside the box are kept, including their styling.
func (o OverlayModel) Render(base string, width, height int, box string) string {
	if !o.active || width <= 0 || height <= 0 || box == "" {
		return base
	}

	boxLines := trimTrailingEmpty(strings.Split(box, "\n"))
	boxW := 0
	for _, line := range boxLines {
		boxW = max(boxW, lipgloss.Width(line))
	}
	boxW = min(boxW, width)
	boxH := min(len(boxLines), height)

	top := max((height-boxH)/2, 0)
	left := max((width-boxW)/2, 0)

	lines := normalizeLines(base, width, height)
	for i := 0; i < boxH; i++ {
		row := top + i
		lines[row] = ansi.Cut(lines[row], 0, left) +
			o.padLine(boxLines[i], boxW) +
			ansi.Cut(lines[row], left+boxW, width)
	}
	return strings.Join(lines, "\n")
}

// padLine clips or pads line to exactly w cells using the overlay background.
func (o OverlayModel) padLine(line string, w int) string {
	lw := lipgloss.Width(line)
	if lw > w {
		return ansi.Cut(line, 0, w)
	}
	if lw == w {
		return line
	}
	fill := strings.Repeat(" ", w-lw)
	if o.bgColor != "" {
		fill = lipgloss.NewStyle().Background(o.bgColor).Render(fill)
	}
	return line + fill
}

func trimTrailingEmpty(lines []string) []string {
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// normalizeLines splits s into exactly height lines of exactly width cells.
func normalizeLines(s string, width, height int) []string {
	lines := strings.Split(s, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	lines = lines[:height]

	for i, line := range lines {
		w := lipgloss.Width(line)
		switch {
		case w > width:
			lines[i] = ansi.Cut(line, 0, width)
		case w < width:
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}
	return lines
}
