package tui

import (
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/debuglog"
	"github.com/lancaster-music-hall/boxoffice/internal/tui/commands"
	"github.com/lancaster-music-hall/boxoffice/internal/tui/datepicker"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.dialogType != DialogNone || m.screen != ScreenBookings || m.tab != TabCalendar {
			return m, nil
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(msg.Height-14, 3))
		return m, nil

	case datepicker.SelectionChangedMsg:
		if msg.ID != m.picker.ID() {
			return m, nil
		}
		m.form.SetDate(msg.New)
		return m, m.loadSelectedDay()

	case commands.DayBookingsMsg:
		if !msg.Date.Equal(m.picker.SelectedDate().Time(nil)) {
			return m, nil
		}
		m.dayBookings = msg.Bookings
		return m, nil

	case commands.BookingSubmittedMsg:
		b := msg.Booking
		m.form.Reset()
		m = m.showDialog(DialogInfo, "Booking received",
			fmt.Sprintf("Reference %s\n%s on %s for %d guests\nTotal £%d, status %s",
				b.ID, b.CustomerName, b.DateString(), b.Attendees, b.TotalCost, b.Status))
		return m, m.loadSelectedDay()

	case commands.InquirySubmittedMsg:
		m = m.showDialog(DialogInfo, "Inquiry sent",
			fmt.Sprintf("Thanks, %s. Reference %s.\nWe will reply to %s.", msg.Inquiry.ContactName, msg.Inquiry.ID, msg.Inquiry.Email))
		return m, nil

	case commands.MessageSentMsg:
		m = m.showDialog(DialogInfo, "Message sent",
			fmt.Sprintf("Thank you for your message, %s! We will get back to you soon.", msg.Message.Name))
		return m, nil

	case commands.SubscribedMsg:
		m = m.showDialog(DialogInfo, "Subscription successful", subscribedText(msg.Subscription))
		return m, nil

	case commands.StatusChangedMsg:
		return m, tea.Batch(
			m.loadManaged(),
			commands.Status("%s %s", msg.ID, msg.Status),
		)

	case commands.BookingsLoadedMsg:
		if msg.Status != m.filter {
			return m, nil
		}
		m.managed = msg.Bookings
		m.table.SetRows(bookingRows(msg.Bookings))
		if m.table.Cursor() >= len(msg.Bookings) {
			m.table.SetCursor(max(len(msg.Bookings)-1, 0))
		}
		return m, nil

	case commands.LoginMsg:
		return m.handleLogin(msg)

	case commands.CopiedMsg:
		return m, commands.Status("Copied %s", msg.Text)

	case commands.ErrMsg:
		m.err = msg.Err
		debuglog.Error("command", msg.Err)
		if errors.Is(msg.Err, booking.ErrNotFound) || isValidation(msg.Err) {
			m = m.showDialog(DialogError, "Something went wrong", msg.Err.Error())
			return m, nil
		}
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(errorTimeout)
		return m, clearStatusAfter(errorTimeout)

	case commands.StatusMsgCmd:
		m.statusMsg = msg.Msg
		m.statusTime = time.Now().Add(statusTimeout)
		return m, clearStatusAfter(statusTimeout)

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil

	case clockMsg:
		// Moves the Today highlight once the session crosses midnight.
		m.picker.Refresh()
		return m, clockTick()
	}

	// Ticks, blinks and anything else the children scheduled.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	cmds = append(cmds, cmd)

	if m.screen == ScreenBookings {
		switch m.tab {
		case TabBooking:
			cmds = append(cmds, m.form.UpdateInputs(msg))
		case TabInquiry:
			updated, cmd := m.updateInquiry(msg)
			if model, ok := updated.(Model); ok {
				m = model
			}
			cmds = append(cmds, cmd)
		}
	}
	if m.screen == ScreenStaff {
		cmds = append(cmds, m.login.update(msg))
	}
	if m.screen == ScreenContact {
		updated, cmd := m.updateContact(msg)
		if model, ok := updated.(Model); ok {
			m = model
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

type clockMsg struct{}

func clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(time.Time) tea.Msg {
		return clockMsg{}
	})
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return commands.ClearStatusMsg{}
	})
}

var validationErrors = []error{
	booking.ErrEmptyName,
	booking.ErrEmptyEmail,
	booking.ErrInvalidEmail,
	booking.ErrEmptyPhone,
	booking.ErrEmptyPayment,
	booking.ErrInvalidAttendees,
	booking.ErrNoDate,
	booking.ErrInvalidKind,
	booking.ErrEmptyOrg,
}

// isValidation reports whether err comes from checking user input.
func isValidation(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
