package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/calendar"
	"github.com/lancaster-music-hall/boxoffice/internal/config"
	"github.com/lancaster-music-hall/boxoffice/internal/dateutil"
)

// Focus positions on the booking form, in tab order.
const (
	fieldName = iota
	fieldEmail
	fieldPhone
	fieldAttendees
	fieldPayment
	fieldNotes
	fieldSubmit
	fieldCount
)

// Text inputs, indexed separately from focus positions.
const (
	inputName = iota
	inputEmail
	inputPhone
	inputAttendees
	inputNotes
	inputCount
)

var fieldInputs = map[int]int{
	fieldName:      inputName,
	fieldEmail:     inputEmail,
	fieldPhone:     inputPhone,
	fieldAttendees: inputAttendees,
	fieldNotes:     inputNotes,
}

// bookingForm is the "Make a Booking" tab. The date is read-only and
// follows the calendar's selection.
type bookingForm struct {
	inputs           [inputCount]textinput.Model
	payment          int // Index into config.PaymentTypes
	focus            int
	date             calendar.Date
	defaultAttendees int
	defaultPayment   int
	styles           *Styles
}

func newBookingForm(cfg *config.Config, styles *Styles, date calendar.Date) bookingForm {
	f := bookingForm{
		date:             date,
		defaultAttendees: cfg.Booking.DefaultAttendees,
		styles:           styles,
	}
	for i, p := range config.PaymentTypes {
		if p == cfg.Booking.DefaultPaymentType {
			f.defaultPayment = i
		}
	}

	specs := [inputCount]struct {
		placeholder string
		limit       int
		width       int
	}{
		inputName:      {"Full name", 80, 32},
		inputEmail:     {"name@example.com", 120, 32},
		inputPhone:     {"01524 000000", 32, 20},
		inputAttendees: {"50", 3, 6},
		inputNotes:     {"Anything we should know", 256, 40},
	}
	for i, spec := range specs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = spec.placeholder
		ti.CharLimit = spec.limit
		ti.Width = spec.width
		ti.PlaceholderStyle = styles.PlaceholderStyle
		ti.TextStyle = styles.InputTextStyle
		ti.Cursor.Style = styles.CursorStyle
		f.inputs[i] = ti
	}
	f.inputs[inputAttendees].Validate = digitsOnly

	f.Reset()
	return f
}

func digitsOnly(s string) error {
	for _, r := range s {
		if r < '0' || r > '9' {
			return fmt.Errorf("attendees must be a number")
		}
	}
	return nil
}

// Reset clears the form and focuses the first field. The date is kept.
func (f *bookingForm) Reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
		f.inputs[i].Blur()
	}
	f.inputs[inputAttendees].SetValue(strconv.Itoa(f.defaultAttendees))
	f.payment = f.defaultPayment
	f.focus = fieldName
	f.inputs[inputName].Focus()
}

// SetDate binds the form to the calendar's selection.
func (f *bookingForm) SetDate(d calendar.Date) {
	f.date = d
}

// Focus returns the focused field.
func (f bookingForm) Focus() int {
	return f.focus
}

func (f *bookingForm) setFocus(field int) tea.Cmd {
	field = (field + fieldCount) % fieldCount
	if idx, ok := fieldInputs[f.focus]; ok {
		f.inputs[idx].Blur()
	}
	f.focus = field
	if idx, ok := fieldInputs[field]; ok {
		return f.inputs[idx].Focus()
	}
	return nil
}

// Update handles a key. submit is true when the user asked to submit.
func (f *bookingForm) Update(msg tea.KeyMsg) (submit bool, cmd tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return false, f.setFocus(f.focus + 1)
	case "shift+tab", "up":
		return false, f.setFocus(f.focus - 1)
	case "ctrl+s":
		return true, nil
	case "enter":
		if f.focus == fieldSubmit {
			return true, nil
		}
		return false, f.setFocus(f.focus + 1)
	}

	if f.focus == fieldPayment {
		switch msg.String() {
		case "left", "h":
			f.payment = (f.payment - 1 + len(config.PaymentTypes)) % len(config.PaymentTypes)
		case "right", "l", " ":
			f.payment = (f.payment + 1) % len(config.PaymentTypes)
		}
		return false, nil
	}

	if idx, ok := fieldInputs[f.focus]; ok {
		f.inputs[idx], cmd = f.inputs[idx].Update(msg)
	}
	return false, cmd
}

// UpdateInputs forwards non-key messages, such as cursor blinks.
func (f *bookingForm) UpdateInputs(msg tea.Msg) tea.Cmd {
	idx, ok := fieldInputs[f.focus]
	if !ok {
		return nil
	}
	var cmd tea.Cmd
	f.inputs[idx], cmd = f.inputs[idx].Update(msg)
	return cmd
}

// PaymentType returns the selected payment type.
func (f bookingForm) PaymentType() string {
	return config.PaymentTypes[f.payment]
}

// Attendees parses the attendees field; zero when it is not a number.
func (f bookingForm) Attendees() int {
	n, err := strconv.Atoi(strings.TrimSpace(f.inputs[inputAttendees].Value()))
	if err != nil {
		return 0
	}
	return n
}

// Draft collects the form into a booking draft.
func (f bookingForm) Draft() (booking.Draft, error) {
	raw := strings.TrimSpace(f.inputs[inputAttendees].Value())
	attendees, err := strconv.Atoi(raw)
	if err != nil {
		return booking.Draft{}, fmt.Errorf("%w: %q is not a number", booking.ErrInvalidAttendees, raw)
	}
	return booking.Draft{
		Name:        f.inputs[inputName].Value(),
		Email:       f.inputs[inputEmail].Value(),
		Phone:       f.inputs[inputPhone].Value(),
		PaymentType: f.PaymentType(),
		Attendees:   attendees,
		Date:        f.date.Time(nil),
		Notes:       f.inputs[inputNotes].Value(),
	}, nil
}

func (f bookingForm) View(pricing booking.Pricing) string {
	s := f.styles
	label := func(field int, text string) string {
		if f.focus == field {
			return s.LabelFocusedStyle.Render(text)
		}
		return s.LabelStyle.Render(text)
	}
	row := func(field int, text, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, label(field, text), value)
	}

	payment := s.InputTextStyle.Render(f.PaymentType())
	if f.focus == fieldPayment {
		payment = s.ChoiceStyle.Render("‹ " + f.PaymentType() + " ›")
	}
	submit := s.ButtonStyle.Render("Submit booking")
	if f.focus == fieldSubmit {
		submit = s.ButtonFocused.Render("Submit booking")
	}

	lines := []string{
		row(-1, "Date", s.AccentText.Render(f.date.Time(nil).Format(dateutil.DisplayLayout))+s.MutedStyle.Render("  (pick on the Calendar tab)")),
		row(fieldName, "Name", f.inputs[inputName].View()),
		row(fieldEmail, "Email", f.inputs[inputEmail].View()),
		row(fieldPhone, "Phone", f.inputs[inputPhone].View()),
		row(fieldAttendees, "Attendees", f.inputs[inputAttendees].View()),
		row(fieldPayment, "Payment", payment),
		row(fieldNotes, "Notes", f.inputs[inputNotes].View()),
		"",
		row(-1, "Total cost", s.AccentText.Render(fmt.Sprintf("£%d", pricing.Cost(f.Attendees())))+
			s.MutedStyle.Render(fmt.Sprintf("  (£%d + £%d per guest)", pricing.Base, pricing.PerAttendee))),
		"",
		submit,
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
