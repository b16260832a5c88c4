package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) handleVenueKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.venues)
	if n == 0 {
		return m, nil
	}
	switch msg.String() {
	case "left", "h":
		m.venueIndex = (m.venueIndex - 1 + n) % n
	case "right", "l":
		m.venueIndex = (m.venueIndex + 1) % n
	case "enter", "b":
		return m.openScreen(ScreenBookings, "venue")
	}
	return m, nil
}

func (m Model) viewVenues() string {
	s := m.styles
	if len(m.venues) == 0 {
		return s.MutedStyle.Render("No venue information available.")
	}
	v := m.venues[m.venueIndex]
	width := min(max(m.width-8, 40), 64)

	dots := make([]string, len(m.venues))
	for i := range m.venues {
		if i == m.venueIndex {
			dots[i] = s.AccentText.Render("●")
		} else {
			dots[i] = s.MutedStyle.Render("○")
		}
	}

	facilities := make([]string, len(v.Facilities))
	for i, f := range v.Facilities {
		facilities[i] = "  • " + f
	}

	rates := []string{}
	for _, line := range v.Rates.Lines() {
		rates = append(rates, s.LabelStyle.Render(line.Label)+s.AccentText.Render(line.Price))
	}

	card := lipgloss.JoinVertical(lipgloss.Left,
		s.PanelTitle.Render(v.Name)+s.MutedStyle.Render(fmt.Sprintf("  capacity %d", v.Capacity)),
		"",
		s.ParagraphStyle.Width(width).Render(v.Description),
		"",
		s.PanelTitle.Render("Facilities"),
		strings.Join(facilities, "\n"),
		"",
		s.PanelTitle.Render("Rates"),
		strings.Join(rates, "\n"),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		s.PanelStyle.Render(card),
		"  ‹ "+strings.Join(dots, " ")+" ›",
	)
}
