package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/tui/commands"
)

// ContactTab identifies a form on the Contact screen.
type ContactTab int

const (
	TabMessage ContactTab = iota
	TabNewsletter
	contactTabCount
)

func (t ContactTab) String() string {
	switch t {
	case TabMessage:
		return "Send Us a Message"
	case TabNewsletter:
		return "Newsletter"
	default:
		return "Unknown"
	}
}

// messageDraft and signupDraft back the huh forms; like inquiryDraft they
// live on the heap so field bindings survive Model copies.
type messageDraft struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

func (d *messageDraft) Message() (*booking.Message, error) {
	return booking.NewMessage(d.Name, d.Email, d.Subject, d.Body)
}

type signupDraft struct {
	Name      string
	Email     string
	Interests []booking.Interest
}

func (d *signupDraft) Subscription() (*booking.Subscription, error) {
	return booking.NewSubscription(d.Name, d.Email, d.Interests)
}

type contactForms struct {
	message     *messageDraft
	messageForm *huh.Form
	signup      *signupDraft
	signupForm  *huh.Form
}

func newContactForms() contactForms {
	c := contactForms{}
	c.resetMessage()
	c.resetSignup()
	return c
}

func (c *contactForms) resetMessage() {
	c.message = &messageDraft{}
	c.messageForm = buildMessageForm(c.message)
}

func (c *contactForms) resetSignup() {
	c.signup = &signupDraft{}
	c.signupForm = buildSignupForm(c.signup)
}

func (c contactForms) form(t ContactTab) *huh.Form {
	if t == TabNewsletter {
		return c.signupForm
	}
	return c.messageForm
}

func emailField(value *string) *huh.Input {
	return huh.NewInput().
		Title("Email").
		Prompt("> ").
		Value(value).
		Validate(func(s string) error {
			if !strings.Contains(s, "@") {
				return booking.ErrInvalidEmail
			}
			return nil
		})
}

func buildMessageForm(d *messageDraft) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Prompt("> ").
				Value(&d.Name).
				Validate(required("name")),
			emailField(&d.Email),
			huh.NewInput().
				Title("Subject").
				Prompt("> ").
				Value(&d.Subject).
				Placeholder("optional"),
			huh.NewText().
				Title("Message").
				Value(&d.Body).
				Validate(required("message")),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}

func buildSignupForm(d *signupDraft) *huh.Form {
	options := make([]huh.Option[booking.Interest], len(booking.Interests))
	for i, in := range booking.Interests {
		options[i] = huh.NewOption(string(in), in)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Prompt("> ").
				Value(&d.Name).
				Validate(required("name")),
			emailField(&d.Email),
			huh.NewMultiSelect[booking.Interest]().
				Title("Interests").
				Options(options...).
				Value(&d.Interests),
		),
	).WithTheme(huh.ThemeCharm()).WithShowHelp(true)
}

func (m *Model) setContactTab(t ContactTab) tea.Cmd {
	if t == m.contactTab {
		return nil
	}
	m.contactTab = t
	return m.contact.form(t).Init()
}

// updateContact forwards msg to the active form and submits it on completion.
func (m Model) updateContact(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.contactTab == TabNewsletter {
		return m.updateSignup(msg)
	}

	updated, cmd := m.contact.messageForm.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.contact.messageForm = f
	}

	switch m.contact.messageForm.State {
	case huh.StateCompleted:
		draft := m.contact.message
		m.contact.resetMessage()
		restart := m.contact.messageForm.Init()
		note, err := draft.Message()
		if err != nil {
			m = m.showDialog(DialogError, "Missing information", err.Error())
			return m, restart
		}
		if m.repo == nil {
			m = m.showDialog(DialogError, "Message not sent", "storage is not initialised")
			return m, restart
		}
		return m, tea.Batch(commands.SendMessage(m.repo, note), restart)
	case huh.StateAborted:
		m.contact.resetMessage()
		m = m.switchScreen(ScreenHome, "abort")
		return m, nil
	}
	return m, cmd
}

func (m Model) updateSignup(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.contact.signupForm.Update(msg)
	if f, ok := updated.(*huh.Form); ok {
		m.contact.signupForm = f
	}

	switch m.contact.signupForm.State {
	case huh.StateCompleted:
		draft := m.contact.signup
		m.contact.resetSignup()
		restart := m.contact.signupForm.Init()
		sub, err := draft.Subscription()
		if err != nil {
			m = m.showDialog(DialogError, "Missing information", err.Error())
			return m, restart
		}
		if m.repo == nil {
			m = m.showDialog(DialogError, "Subscription not saved", "storage is not initialised")
			return m, restart
		}
		return m, tea.Batch(commands.Subscribe(m.repo, sub), restart)
	case huh.StateAborted:
		m.contact.resetSignup()
		m = m.switchScreen(ScreenHome, "abort")
		return m, nil
	}
	return m, cmd
}

func subscribedText(sub *booking.Subscription) string {
	text := fmt.Sprintf("Thank you for subscribing to our newsletter, %s!", sub.Name)
	if len(sub.Interests) > 0 {
		text += "\nTopics: " + sub.InterestList()
	}
	return text
}

func (m Model) viewContact() string {
	return m.contact.form(m.contactTab).View()
}
