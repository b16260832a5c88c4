package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type homeEntry struct {
	label  string
	screen Screen
	quit   bool
}

var homeMenu = []homeEntry{
	{label: "Venue information", screen: ScreenVenues},
	{label: "Bookings", screen: ScreenBookings},
	{label: "Contact us", screen: ScreenContact},
	{label: "Staff login", screen: ScreenStaff},
	{label: "Quit", quit: true},
}

const welcomeText = "Lancaster's Music Hall is a venue for music and events in the heart of the city. " +
	"We host everything from classical concerts to contemporary shows."

var contactLines = [][2]string{
	{"Address", "123 Music Street, Lancaster, LA1 1AA"},
	{"Phone", "+44 (0)1234 567890"},
	{"Email", "info@lancastersmusichall.com"},
	{"Hours", "Mon-Fri 9am-5pm, Sat 10am-4pm, Sun closed"},
}

func (m Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.homeItem = (m.homeItem - 1 + len(homeMenu)) % len(homeMenu)
	case "down", "j":
		m.homeItem = (m.homeItem + 1) % len(homeMenu)
	case "enter", " ":
		entry := homeMenu[m.homeItem]
		if entry.quit {
			return m, tea.Quit
		}
		return m.openScreen(entry.screen, "menu")
	}
	return m, nil
}

func (m Model) viewHome() string {
	s := m.styles
	width := min(max(m.width-4, 40), 72)

	menu := make([]string, len(homeMenu))
	for i, e := range homeMenu {
		if i == m.homeItem {
			menu[i] = s.ButtonFocused.Render("› " + e.label)
		} else {
			menu[i] = s.ButtonStyle.Render("  " + e.label)
		}
	}

	featured := []string{s.PanelTitle.Render("Featured Events")}
	for _, e := range m.featured {
		featured = append(featured, s.AccentText.Render(e.Title)+"  "+s.MutedStyle.Render(e.When))
	}

	contact := make([]string, len(contactLines))
	for i, c := range contactLines {
		contact[i] = s.LabelStyle.Render(c[0]) + c[1]
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.PanelTitle.Render("Welcome to Lancaster's Music Hall"),
		"",
		s.ParagraphStyle.Width(width).Render(welcomeText),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(24).Render(strings.Join(menu, "\n")),
			strings.Join(featured, "\n"),
		),
		"",
		s.PanelTitle.Render("Contact"),
		strings.Join(contact, "\n"),
		"",
		s.MutedStyle.Render(fmt.Sprintf("%d venues · bookings from £%d", len(m.venues), m.pricing.Base)),
	)
}
