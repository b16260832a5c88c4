package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/debuglog"
	"github.com/lancaster-music-hall/boxoffice/internal/staff"
	"github.com/lancaster-music-hall/boxoffice/internal/tui/commands"
)

// loginForm is the staff login screen.
type loginForm struct {
	user    textinput.Model
	pass    textinput.Model
	focus   int // 0 user, 1 password
	err     string
	pending bool
}

func newLoginForm(styles *Styles) loginForm {
	user := textinput.New()
	user.Prompt = ""
	user.Placeholder = "username"
	user.CharLimit = 64
	user.Width = 24
	user.TextStyle = styles.InputTextStyle
	user.PlaceholderStyle = styles.PlaceholderStyle
	user.Cursor.Style = styles.CursorStyle
	user.Focus()

	pass := textinput.New()
	pass.Prompt = ""
	pass.Placeholder = "password"
	pass.CharLimit = 128
	pass.Width = 24
	pass.EchoMode = textinput.EchoPassword
	pass.EchoCharacter = '•'
	pass.TextStyle = styles.InputTextStyle
	pass.PlaceholderStyle = styles.PlaceholderStyle
	pass.Cursor.Style = styles.CursorStyle

	return loginForm{user: user, pass: pass}
}

func (l *loginForm) setFocus(i int) tea.Cmd {
	l.focus = i
	if i == 0 {
		l.pass.Blur()
		return l.user.Focus()
	}
	l.user.Blur()
	return l.pass.Focus()
}

func (l *loginForm) reset() {
	l.user.Reset()
	l.pass.Reset()
	l.err = ""
	l.pending = false
	l.setFocus(0)
}

func (l *loginForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if l.focus == 0 {
		l.user, cmd = l.user.Update(msg)
	} else {
		l.pass, cmd = l.pass.Update(msg)
	}
	return cmd
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "up", "down":
		cmd := m.login.setFocus(1 - m.login.focus)
		return m, cmd
	case "enter":
		if m.login.focus == 0 {
			cmd := m.login.setFocus(1)
			return m, cmd
		}
		user := strings.TrimSpace(m.login.user.Value())
		if user == "" || m.login.pass.Value() == "" {
			m.login.err = "Enter a username and password"
			return m, nil
		}
		m.login.err = ""
		m.login.pending = true
		return m, commands.VerifyStaff(m.config.Staff.AuthFile, user, m.login.pass.Value())
	}
	cmd := m.login.update(msg)
	return m, cmd
}

func (m Model) handleLogin(msg commands.LoginMsg) (tea.Model, tea.Cmd) {
	m.login.pending = false
	if msg.Err != nil {
		debuglog.Error("staff login", msg.Err)
		m.login.pass.Reset()
		switch {
		case errors.Is(msg.Err, staff.ErrNoCredentials):
			m.login.err = "No staff account yet. Run: boxoffice staff passwd"
		case errors.Is(msg.Err, staff.ErrInvalidCredentials):
			m.login.err = "Invalid username or password"
		default:
			m.login.err = msg.Err.Error()
		}
		return m, nil
	}

	m.user = msg.Username
	m.login.reset()
	m = m.switchScreen(ScreenManage, "login")
	return m, tea.Batch(m.loadManaged(), commands.Status("Logged in as %s", msg.Username))
}

func (m Model) viewLogin() string {
	s := m.styles
	userLabel, passLabel := s.LabelStyle, s.LabelStyle
	if m.login.focus == 0 {
		userLabel = s.LabelFocusedStyle
	} else {
		passLabel = s.LabelFocusedStyle
	}

	lines := []string{
		s.PanelTitle.Render("Staff login"),
		"",
		userLabel.Render("Username") + m.login.user.View(),
		passLabel.Render("Password") + m.login.pass.View(),
		"",
	}
	switch {
	case m.login.pending:
		lines = append(lines, s.MutedStyle.Render("Checking..."))
	case m.login.err != "":
		lines = append(lines, s.ErrorStyle.Render(m.login.err))
	default:
		lines = append(lines, s.MutedStyle.Render("enter to log in"))
	}
	return s.PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Management table.

var manageFilters = []booking.Status{"", booking.StatusPending, booking.StatusApproved, booking.StatusDenied}

func filterLabel(s booking.Status) string {
	if s == "" {
		return "All"
	}
	return string(s)
}

func newBookingTable(styles *Styles) table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 14},
		{Title: "Customer", Width: 20},
		{Title: "Date", Width: 10},
		{Title: "Guests", Width: 6},
		{Title: "Cost", Width: 7},
		{Title: "Payment", Width: 13},
		{Title: "Status", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(10),
	)
	ts := table.DefaultStyles()
	ts.Header = styles.TableHeader
	ts.Cell = styles.TableCell
	ts.Selected = styles.TableSelected
	t.SetStyles(ts)
	return t
}

func bookingRows(bookings []*booking.Booking) []table.Row {
	rows := make([]table.Row, 0, len(bookings))
	for _, b := range bookings {
		rows = append(rows, table.Row{
			b.ID,
			b.CustomerName,
			b.DateString(),
			fmt.Sprintf("%d", b.Attendees),
			fmt.Sprintf("£%d", b.TotalCost),
			b.PaymentType,
			string(b.Status),
		})
	}
	return rows
}

func (m Model) loadManaged() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	return commands.LoadBookings(m.repo, m.filter)
}

func (m Model) selectedBooking() *booking.Booking {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.managed) {
		return nil
	}
	return m.managed[i]
}

func (m Model) handleManageKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.user = ""
		m.managed = nil
		m.table.SetRows(nil)
		m = m.switchScreen(ScreenHome, "logout")
		return m, commands.Status("Logged out")
	case "r":
		return m, m.loadManaged()
	case "f":
		next := 0
		for i, f := range manageFilters {
			if f == m.filter {
				next = (i + 1) % len(manageFilters)
			}
		}
		m.filter = manageFilters[next]
		return m, m.loadManaged()
	case "a", "d":
		b := m.selectedBooking()
		if b == nil || m.repo == nil {
			return m, nil
		}
		if b.IsDecided() {
			return m, commands.Status("%s is already %s", b.ID, strings.ToLower(string(b.Status)))
		}
		status := booking.StatusApproved
		if msg.String() == "d" {
			status = booking.StatusDenied
		}
		return m, commands.SetStatus(m.repo, b.ID, status)
	case "y":
		if b := m.selectedBooking(); b != nil {
			return m, commands.CopyToClipboard(b.ID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) viewManage() string {
	s := m.styles
	title := s.PanelTitle.Render("Bookings") +
		s.MutedStyle.Render(fmt.Sprintf("  filter: %s  ·  %d shown  ·  signed in as %s", filterLabel(m.filter), len(m.managed), m.user))

	body := m.table.View()
	if len(m.managed) == 0 {
		body = s.MutedStyle.Render("No bookings match this filter.")
	}

	detail := ""
	if b := m.selectedBooking(); b != nil {
		detail = lipgloss.JoinVertical(lipgloss.Left,
			"",
			s.LabelStyle.Render("Contact")+b.Email+"  "+b.Phone,
			s.LabelStyle.Render("Status")+s.StatusBadge(b.Status),
		)
		if b.Notes != "" {
			detail = lipgloss.JoinVertical(lipgloss.Left, detail, s.LabelStyle.Render("Notes")+b.Notes)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, "", body, detail)
}
