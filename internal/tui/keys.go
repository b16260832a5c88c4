package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lancaster-music-hall/boxoffice/internal/debuglog"
	"github.com/lancaster-music-hall/boxoffice/internal/tui/commands"
)

// appKeys are the global bindings shown in the footer.
type appKeys struct {
	Screens key.Binding
	Tabs    key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func (k appKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Screens, k.Tabs, k.Back, k.Quit}
}

func (k appKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var globalKeys = appKeys{
	Screens: key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "screens")),
	Tabs:    key.NewBinding(key.WithKeys("ctrl+left", "ctrl+right"), key.WithHelp("ctrl+←/→", "tabs")),
	Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var screenKeys = map[string]Screen{
	"1": ScreenHome,
	"2": ScreenVenues,
	"3": ScreenBookings,
	"4": ScreenStaff,
	"5": ScreenContact,
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	debuglog.KeyPress(msg.String(), m.screen.String())

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.dialogType != DialogNone {
		return m.handleDialogKeys(msg)
	}

	switch msg.String() {
	case "esc":
		switch {
		case m.screen == ScreenManage:
			return m.handleManageKeys(msg)
		case m.screen == ScreenBookings && m.tab == TabCalendar && m.picker.YearsVisible():
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		case m.screen != ScreenHome:
			m = m.switchScreen(ScreenHome, "back")
			return m, nil
		}
		return m, nil
	case "ctrl+left", "ctrl+right":
		step := 1
		if msg.String() == "ctrl+left" {
			step = -1
		}
		switch m.screen {
		case ScreenBookings:
			cmd := m.setTab(BookingTab((int(m.tab) + step + int(tabCount)) % int(tabCount)))
			return m, cmd
		case ScreenContact:
			n := int(contactTabCount)
			cmd := m.setContactTab(ContactTab((int(m.contactTab) + step + n) % n))
			return m, cmd
		}
	}

	if !m.typing() {
		if msg.String() == "q" {
			return m, tea.Quit
		}
		if s, ok := screenKeys[msg.String()]; ok {
			return m.openScreen(s, "key")
		}
	}

	switch m.screen {
	case ScreenHome:
		return m.handleHomeKeys(msg)
	case ScreenVenues:
		return m.handleVenueKeys(msg)
	case ScreenBookings:
		return m.handleBookingKeys(msg)
	case ScreenStaff:
		return m.handleLoginKeys(msg)
	case ScreenManage:
		return m.handleManageKeys(msg)
	case ScreenContact:
		return m.updateContact(msg)
	}
	return m, nil
}

// typing reports whether keys go to a text field.
func (m Model) typing() bool {
	switch m.screen {
	case ScreenStaff, ScreenContact:
		return true
	case ScreenBookings:
		return m.tab != TabCalendar
	}
	return false
}

func (m Model) switchScreen(to Screen, reason string) Model {
	if to != m.screen {
		debuglog.ScreenChange(m.screen.String(), to.String(), reason)
	}
	m.screen = to
	return m
}

// openScreen switches screens and starts whatever loading the target needs.
func (m Model) openScreen(to Screen, reason string) (tea.Model, tea.Cmd) {
	if to == ScreenStaff && m.user != "" {
		to = ScreenManage
	}
	m = m.switchScreen(to, reason)
	switch to {
	case ScreenBookings:
		m.picker.Refresh()
		return m, m.loadSelectedDay()
	case ScreenManage:
		return m, m.loadManaged()
	case ScreenStaff:
		cmd := m.login.setFocus(0)
		return m, cmd
	case ScreenContact:
		return m, m.contact.form(m.contactTab).Init()
	}
	return m, nil
}

func (m *Model) setTab(t BookingTab) tea.Cmd {
	if t == m.tab {
		return nil
	}
	m.tab = t
	if t == TabInquiry {
		return m.inquiry.form.Init()
	}
	return nil
}

func (m Model) handleBookingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabCalendar:
		if msg.String() == "tab" && !m.picker.YearsVisible() {
			cmd := m.setTab(TabBooking)
			return m, cmd
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case TabBooking:
		submit, cmd := m.form.Update(msg)
		if !submit {
			return m, cmd
		}
		draft, err := m.form.Draft()
		if err != nil {
			m = m.showDialog(DialogError, "Booking not sent", err.Error())
			return m, nil
		}
		if m.repo == nil {
			m = m.showDialog(DialogError, "Booking not sent", "storage is not initialised")
			return m, nil
		}
		return m, commands.SubmitBooking(m.repo, draft, m.pricing)

	case TabInquiry:
		return m.updateInquiry(msg)
	}
	return m, nil
}

// updateInquiry forwards msg to the huh form and submits it on completion.
func (m Model) updateInquiry(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.inquiry.form.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.inquiry.form = f
	}

	switch m.inquiry.form.State {
	case huh.StateCompleted:
		q, err := m.inquiry.draft.Inquiry(m.nowFunc())
		m.inquiry = newInquiryForm(m.picker.SelectedDate())
		if err != nil {
			m = m.showDialog(DialogError, "Inquiry not sent", err.Error())
			return m, m.inquiry.form.Init()
		}
		if m.repo == nil {
			m = m.showDialog(DialogError, "Inquiry not sent", "storage is not initialised")
			return m, m.inquiry.form.Init()
		}
		return m, tea.Batch(commands.SubmitInquiry(m.repo, q), m.inquiry.form.Init())
	case huh.StateAborted:
		m.inquiry = newInquiryForm(m.picker.SelectedDate())
		m.tab = TabCalendar
		return m, nil
	}
	return m, cmd
}

func (m Model) showDialog(t DialogType, title, body string) Model {
	m.dialogType = t
	m.dialogTitle = title
	m.dialogBody = body
	return m
}

func (m Model) closeDialog() Model {
	m.dialogType = DialogNone
	m.dialogTitle = ""
	m.dialogBody = ""
	return m
}

func (m Model) handleDialogKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialogType == DialogInit {
		switch msg.String() {
		case "enter", "y":
			updated, err := m.initializeStorage()
			if err != nil {
				debuglog.Error("initializing storage", err)
				m = m.showDialog(DialogError, "Setup failed", err.Error())
				return m, nil
			}
			m = updated.closeDialog()
			return m, tea.Batch(m.loadSelectedDay(), commands.Status("Storage ready"))
		case "esc", "q", "n":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "esc", "enter", " ", "q":
		m = m.closeDialog()
	}
	return m, nil
}
