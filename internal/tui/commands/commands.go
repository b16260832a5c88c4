// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/debuglog"
	"github.com/lancaster-music-hall/boxoffice/internal/staff"
)

// DayBookingsMsg carries the bookings recorded for one day.
type DayBookingsMsg struct {
	Date     time.Time
	Bookings []*booking.Booking
}

// BookingsLoadedMsg carries the management listing.
type BookingsLoadedMsg struct {
	Status   booking.Status
	Bookings []*booking.Booking
}

// BookingSubmittedMsg is sent when a booking is stored.
type BookingSubmittedMsg struct {
	Booking *booking.Booking
}

// InquirySubmittedMsg is sent when an inquiry is stored.
type InquirySubmittedMsg struct {
	Inquiry *booking.Inquiry
}

// MessageSentMsg is sent when a contact message is stored.
type MessageSentMsg struct {
	Message *booking.Message
}

// SubscribedMsg is sent when a newsletter sign-up is stored.
type SubscribedMsg struct {
	Subscription *booking.Subscription
}

// StatusChangedMsg is sent after a booking is approved or denied.
type StatusChangedMsg struct {
	ID     string
	Status booking.Status
}

// LoginMsg is sent after staff credentials are checked.
type LoginMsg struct {
	Username string
	Err      error
}

// CopiedMsg is sent after text is written to the clipboard.
type CopiedMsg struct {
	Text string
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadDayBookings loads the bookings on day.
func LoadDayBookings(repo booking.Repository, day time.Time) tea.Cmd {
	return func() tea.Msg {
		bookings, err := repo.ListBookingsByDateRange(context.Background(), day, day)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading bookings for %s: %w", day.Format(time.DateOnly), err)}
		}
		return DayBookingsMsg{Date: day, Bookings: bookings}
	}
}

// LoadBookings loads bookings for the management table. An empty status
// loads everything.
func LoadBookings(repo booking.Repository, status booking.Status) tea.Cmd {
	return func() tea.Msg {
		bookings, err := repo.ListBookings(context.Background(), status)
		if err != nil {
			return ErrMsg{Err: fmt.Errorf("loading bookings: %w", err)}
		}
		return BookingsLoadedMsg{Status: status, Bookings: bookings}
	}
}

// SubmitBooking validates the draft, prices it and stores it.
func SubmitBooking(repo booking.Repository, draft booking.Draft, pricing booking.Pricing) tea.Cmd {
	return func() tea.Msg {
		b, err := booking.New(draft, pricing)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if err := repo.CreateBooking(context.Background(), b); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving booking: %w", err)}
		}
		debuglog.BookingSubmitted(b.ID, b.DateString(), b.Attendees, b.TotalCost)
		return BookingSubmittedMsg{Booking: b}
	}
}

// SubmitInquiry stores an inquiry that has already been validated.
func SubmitInquiry(repo booking.Repository, q *booking.Inquiry) tea.Cmd {
	return func() tea.Msg {
		if q == nil {
			return ErrMsg{Err: fmt.Errorf("no inquiry to save")}
		}
		if err := repo.CreateInquiry(context.Background(), q); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving inquiry: %w", err)}
		}
		return InquirySubmittedMsg{Inquiry: q}
	}
}

// SendMessage stores a validated contact message.
func SendMessage(repo booking.Repository, msg *booking.Message) tea.Cmd {
	return func() tea.Msg {
		if err := repo.CreateMessage(context.Background(), msg); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving message: %w", err)}
		}
		return MessageSentMsg{Message: msg}
	}
}

// Subscribe stores a validated newsletter sign-up.
func Subscribe(repo booking.Repository, sub *booking.Subscription) tea.Cmd {
	return func() tea.Msg {
		if err := repo.Subscribe(context.Background(), sub); err != nil {
			return ErrMsg{Err: fmt.Errorf("saving subscription: %w", err)}
		}
		return SubscribedMsg{Subscription: sub}
	}
}

// SetStatus approves or denies a booking.
func SetStatus(repo booking.Repository, id string, status booking.Status) tea.Cmd {
	return func() tea.Msg {
		if err := repo.SetStatus(context.Background(), id, status); err != nil {
			return ErrMsg{Err: fmt.Errorf("updating %s: %w", id, err)}
		}
		debuglog.BookingStatus(id, string(status))
		return StatusChangedMsg{ID: id, Status: status}
	}
}

// VerifyStaff checks a login against the credentials file at path.
func VerifyStaff(path, username, password string) tea.Cmd {
	return func() tea.Msg {
		creds, err := staff.Load(path)
		if err != nil {
			return LoginMsg{Username: username, Err: err}
		}
		return LoginMsg{Username: username, Err: creds.Verify(username, password)}
	}
}

// CopyToClipboard writes text to the system clipboard.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return ErrMsg{Err: fmt.Errorf("copying to clipboard: %w", err)}
		}
		return CopiedMsg{Text: text}
	}
}

// Status shows a temporary status line.
func Status(format string, args ...any) tea.Cmd {
	msg := fmt.Sprintf(format, args...)
	return func() tea.Msg {
		return StatusMsgCmd{Msg: msg}
	}
}
