package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/calendar"
	"github.com/lancaster-music-hall/boxoffice/internal/dateutil"
)

// inquiryDraft backs the huh form. It lives on the heap so the form's
// field bindings survive copies of the Model.
type inquiryDraft struct {
	Organisation string
	Contact      string
	Email        string
	Phone        string
	Kind         booking.InquiryKind
	Preferred    string
	Message      string
}

type inquiryForm struct {
	draft *inquiryDraft
	form  *huh.Form
}

func newInquiryForm(preferred calendar.Date) inquiryForm {
	d := &inquiryDraft{
		Kind:      booking.KindCorporate,
		Preferred: preferred.String(),
	}
	return inquiryForm{draft: d, form: buildInquiryForm(d)}
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " cannot be empty")
		}
		return nil
	}
}

func buildInquiryForm(d *inquiryDraft) *huh.Form {
	kinds := make([]huh.Option[booking.InquiryKind], 0, len(booking.InquiryKinds))
	for _, k := range booking.InquiryKinds {
		kinds = append(kinds, huh.NewOption(string(k), k))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Organisation").
				Prompt("> ").
				Value(&d.Organisation).
				Placeholder("Lancaster University").
				Validate(required("organisation")),
			huh.NewInput().
				Title("Contact name").
				Prompt("> ").
				Value(&d.Contact).
				Validate(required("contact name")),
			huh.NewInput().
				Title("Email").
				Prompt("> ").
				Value(&d.Email).
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return booking.ErrInvalidEmail
					}
					return nil
				}),
			huh.NewInput().
				Title("Phone").
				Prompt("> ").
				Value(&d.Phone).
				Placeholder("optional"),
		),
		huh.NewGroup(
			huh.NewSelect[booking.InquiryKind]().
				Title("Inquiry type").
				Options(kinds...).
				Value(&d.Kind),
			huh.NewInput().
				Title("Preferred date").
				Prompt("> ").
				Value(&d.Preferred).
				Placeholder("YYYY-MM-DD, tomorrow, friday (optional)").
				Validate(func(s string) error {
					_, err := parsePreferred(s, time.Now())
					return err
				}),
			huh.NewText().
				Title("Message").
				Value(&d.Message).
				Placeholder("Tell us about the event"),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}

// parsePreferred accepts an empty string, an absolute date or a relative
// one such as "tomorrow".
func parsePreferred(s string, now time.Time) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := dateutil.ParseRelativeDate(s, now)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Inquiry validates the draft into a domain inquiry.
func (d *inquiryDraft) Inquiry(now time.Time) (*booking.Inquiry, error) {
	preferred, err := parsePreferred(d.Preferred, now)
	if err != nil {
		return nil, err
	}
	return booking.NewInquiry(d.Organisation, d.Contact, d.Email, d.Phone, d.Kind, preferred, d.Message)
}
