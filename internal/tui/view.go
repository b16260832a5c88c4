package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lancaster-music-hall/boxoffice/internal/dateutil"
)

var topScreens = []Screen{ScreenHome, ScreenVenues, ScreenBookings, ScreenStaff, ScreenContact}

// View renders the TUI. Rows 0-3 are fixed so the calendar's origin stays
// at pickerOriginX, pickerOriginY.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	var body string
	switch m.screen {
	case ScreenHome:
		body = m.viewHome()
	case ScreenVenues:
		body = m.viewVenues()
	case ScreenBookings:
		body = m.viewBookings()
	case ScreenStaff:
		body = m.viewLogin()
	case ScreenManage:
		body = m.viewManage()
	case ScreenContact:
		body = m.viewContact()
	}

	header := m.viewHeader()
	footer := m.viewFooter()
	bodyH := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body = lipgloss.NewStyle().PaddingLeft(pickerOriginX).Height(bodyH).MaxHeight(bodyH).Render(body)

	base := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)

	if m.dialogType == DialogNone {
		return base
	}
	overlay := m.overlay
	overlay.SetActive(true)
	overlay.SetBackground(m.styles.BackdropColor)
	return overlay.Render(base, m.width, m.height, m.viewDialog())
}

// viewHeader renders rows 0-3: title with screen tabs, then the booking tab
// bar on the Bookings screen.
func (m Model) viewHeader() string {
	s := m.styles
	tabs := make([]string, len(topScreens))
	for i, scr := range topScreens {
		label := fmt.Sprintf("%d %s", i+1, scr)
		active := scr == m.screen || (scr == ScreenStaff && m.screen == ScreenManage)
		if active {
			tabs[i] = s.ScreenTabOn.Render(label)
		} else {
			tabs[i] = s.ScreenTab.Render(label)
		}
	}
	title := s.TitleStyle.Render("♪ Lancaster's Music Hall") + "  " + strings.Join(tabs, "")

	var labels []string
	active := -1
	switch m.screen {
	case ScreenBookings:
		for t := BookingTab(0); t < tabCount; t++ {
			labels = append(labels, t.String())
		}
		active = int(m.tab)
	case ScreenContact:
		for t := ContactTab(0); t < contactTabCount; t++ {
			labels = append(labels, t.String())
		}
		active = int(m.contactTab)
	}
	bar := ""
	if len(labels) > 0 {
		parts := make([]string, len(labels))
		for i, l := range labels {
			if i == active {
				parts[i] = s.BookingTabOn.Render(l)
			} else {
				parts[i] = s.BookingTab.Render(l)
			}
		}
		bar = "  " + strings.Join(parts, " ")
	}
	return strings.Join([]string{title, "", bar, ""}, "\n")
}

func (m Model) viewBookings() string {
	switch m.tab {
	case TabBooking:
		return m.form.View(m.pricing)
	case TabInquiry:
		return m.inquiry.form.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.picker.View(), "   ", m.viewDayPanel())
}

// viewDayPanel lists the bookings on the selected day.
func (m Model) viewDayPanel() string {
	s := m.styles
	date := m.picker.SelectedDate()
	lines := []string{
		s.PanelTitle.Render("Events on " + date.Format(dateutil.DisplayLayout)),
		"",
	}
	if len(m.dayBookings) == 0 {
		lines = append(lines, s.MutedStyle.Render("No events booked."), "", s.MutedStyle.Render("tab: make a booking"))
	}
	for _, b := range m.dayBookings {
		lines = append(lines, fmt.Sprintf("%s  %s  %d guests  %s",
			s.AccentText.Render(b.ID), b.CustomerName, b.Attendees, s.StatusBadge(b.Status)))
	}
	return lipgloss.NewStyle().Width(44).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (m Model) viewFooter() string {
	s := m.styles
	status := ""
	if m.statusMsg != "" {
		if m.err != nil && strings.HasPrefix(m.statusMsg, "Error") {
			status = s.ErrorStyle.Render(m.statusMsg)
		} else {
			status = s.StatusStyle.Render(m.statusMsg)
		}
	}

	helpView := m.help.View(globalKeys)
	if m.screen == ScreenBookings && m.tab == TabCalendar {
		helpView = m.help.ShortHelpView(m.picker.KeyMap.ShortHelp()) + "  " + helpView
	}
	if m.screen == ScreenManage {
		helpView = s.MutedStyle.Render("a approve · d deny · f filter · r refresh · y copy id · esc log out")
	}
	return lipgloss.JoinVertical(lipgloss.Left, " "+status, " "+helpView)
}

func (m Model) viewDialog() string {
	s := m.styles
	box := s.DialogStyle
	body := m.dialogBody
	hint := "enter to close"
	switch m.dialogType {
	case DialogError:
		box = s.DialogErrorStyle
	case DialogInit:
		body = m.initState.Describe()
		hint = "enter to set up · esc to quit"
	}
	content := lipgloss.JoinVertical(lipgloss.Left,
		s.DialogTitle.Render(m.dialogTitle),
		"",
		body,
		"",
		s.DialogHint.Render(hint),
	)
	return box.Render(content)
}
