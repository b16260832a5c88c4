package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/calendar"
	"github.com/lancaster-music-hall/boxoffice/internal/config"
	"github.com/lancaster-music-hall/boxoffice/internal/db"
	"github.com/lancaster-music-hall/boxoffice/internal/staff"
	"github.com/lancaster-music-hall/boxoffice/internal/tui/commands"
	"github.com/lancaster-music-hall/boxoffice/internal/tui/datepicker"
)

var fixedNow = time.Date(2024, time.March, 2, 10, 0, 0, 0, time.Local)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(dir, "boxoffice.db")
	cfg.Staff.AuthFile = filepath.Join(dir, "staff.secret")
	cfg.Calendar.HoverDebounceMs = 0
	return cfg
}

func openTestRepo(t *testing.T, cfg *config.Config) booking.Repository {
	t.Helper()
	repo, err := db.Open(cfg.Storage.DBPath)
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func newTestModel(t *testing.T, repo booking.Repository, cfg *config.Config, opts ...ModelOption) Model {
	t.Helper()
	opts = append([]ModelOption{WithClock(func() time.Time { return fixedNow })}, opts...)
	m := *New(repo, cfg, opts...)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", updated)
	}
	return model, cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+right":
		return tea.KeyMsg{Type: tea.KeyCtrlRight}
	case "ctrl+left":
		return tea.KeyMsg{Type: tea.KeyCtrlLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = update(t, m, keyMsg(k))
	}
	return m, cmd
}

// collect runs cmd and flattens one level of batching. Only call it on
// commands that do not wait on timers.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		if c == nil {
			continue
		}
		out = append(out, c())
	}
	return out
}

func find[T any](t *testing.T, msgs []tea.Msg) T {
	t.Helper()
	for _, msg := range msgs {
		if v, ok := msg.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("no %T among %#v", zero, msgs)
	return zero
}

func TestNewModelStartsOnHome(t *testing.T) {
	m := newTestModel(t, nil, testConfig(t))

	if m.screen != ScreenHome {
		t.Errorf("screen = %v, want Home", m.screen)
	}
	want := calendar.NewDate(2024, time.March, 2)
	if got := m.picker.SelectedDate(); got != want {
		t.Errorf("picker selection = %v, want %v", got, want)
	}
	if m.form.date != want {
		t.Errorf("form date = %v, want %v", m.form.date, want)
	}
	if got := m.form.Attendees(); got != 50 {
		t.Errorf("default attendees = %d, want 50", got)
	}
	if got := m.form.PaymentType(); got != "Credit Card" {
		t.Errorf("default payment = %q", got)
	}
	if len(m.venues) == 0 {
		t.Error("expected the venue catalogue to load")
	}
}

func TestScreenNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want Screen
	}{
		{"venues", []string{"2"}, ScreenVenues},
		{"bookings", []string{"3"}, ScreenBookings},
		{"staff", []string{"4"}, ScreenStaff},
		{"back home", []string{"2", "esc"}, ScreenHome},
		{"digits typed into login", []string{"4", "1"}, ScreenStaff},
		{"digits ignored on booking form", []string{"3", "ctrl+right", "2"}, ScreenBookings},
		{"menu", []string{"down", "enter"}, ScreenBookings},
		{"menu wraps", []string{"up", "up", "up", "up", "enter"}, ScreenBookings},
		{"contact", []string{"5"}, ScreenContact},
		{"digits typed into contact form", []string{"5", "1"}, ScreenContact},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, nil, testConfig(t))
			m, _ = press(t, m, tt.keys...)
			if m.screen != tt.want {
				t.Errorf("screen = %v, want %v", m.screen, tt.want)
			}
		})
	}
}

func TestBookingTabs(t *testing.T) {
	m := newTestModel(t, nil, testConfig(t))
	m, _ = press(t, m, "3")

	if m.tab != TabCalendar {
		t.Fatalf("tab = %v, want Calendar", m.tab)
	}
	m, _ = press(t, m, "tab")
	if m.tab != TabBooking {
		t.Fatalf("tab key on calendar: tab = %v", m.tab)
	}
	m, _ = press(t, m, "ctrl+right")
	if m.tab != TabInquiry {
		t.Fatalf("ctrl+right: tab = %v", m.tab)
	}
	m, _ = press(t, m, "ctrl+right")
	if m.tab != TabCalendar {
		t.Fatalf("ctrl+right wraps: tab = %v", m.tab)
	}
	m, _ = press(t, m, "ctrl+left")
	if m.tab != TabInquiry {
		t.Fatalf("ctrl+left wraps: tab = %v", m.tab)
	}
}

func TestSelectionUpdatesBookingForm(t *testing.T) {
	m := newTestModel(t, nil, testConfig(t))
	m, _ = press(t, m, "3")

	want := calendar.NewDate(2024, time.March, 15)
	m, _ = update(t, m, datepicker.SelectionChangedMsg{ID: m.picker.ID(), New: want})
	if m.form.date != want {
		t.Errorf("form date = %v, want %v", m.form.date, want)
	}

	// Another picker's selection is not ours.
	m, _ = update(t, m, datepicker.SelectionChangedMsg{ID: m.picker.ID() + 1000, New: calendar.NewDate(2024, time.April, 1)})
	if m.form.date != want {
		t.Errorf("foreign selection changed the form: %v", m.form.date)
	}
}

func TestMouseClickSelectsDay(t *testing.T) {
	m := newTestModel(t, nil, testConfig(t))
	m, _ = press(t, m, "3")

	// March 2024 starts on a Friday, so row 2 col 5 is the 15th. Day rows
	// begin two lines below the picker's top edge.
	click := tea.MouseMsg{
		X:      pickerOriginX + 5*datepicker.CellWidth + 1,
		Y:      pickerOriginY + 2 + 2,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	m, cmd := update(t, m, click)
	sel := find[datepicker.SelectionChangedMsg](t, collect(cmd))
	m, _ = update(t, m, sel)

	want := calendar.NewDate(2024, time.March, 15)
	if m.picker.SelectedDate() != want || m.form.date != want {
		t.Errorf("picker %v, form %v, want %v", m.picker.SelectedDate(), m.form.date, want)
	}
}

func TestMouseIgnoredOffCalendar(t *testing.T) {
	m := newTestModel(t, nil, testConfig(t))
	click := tea.MouseMsg{
		X:      pickerOriginX + 5*datepicker.CellWidth + 1,
		Y:      pickerOriginY + 4,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}
	_, cmd := update(t, m, click)
	if cmd != nil {
		t.Error("clicks on the home screen should not reach the picker")
	}
}

func todayDay(g calendar.Grid) int {
	for _, row := range g.Cells {
		for _, c := range row {
			if c.Today {
				return c.Day
			}
		}
	}
	return 0
}

func TestTodayFollowsClockAcrossMidnight(t *testing.T) {
	now := time.Date(2024, time.December, 31, 23, 59, 0, 0, time.Local)
	m := newTestModel(t, nil, testConfig(t), WithClock(func() time.Time { return now }))
	if got := todayDay(m.picker.Grid()); got != 31 {
		t.Fatalf("today = %d, want 31", got)
	}

	now = now.Add(2 * time.Minute)
	m, cmd := update(t, m, clockMsg{})
	if cmd == nil {
		t.Error("clock tick should reschedule itself")
	}
	// 1 January is not in the displayed December grid.
	if got := todayDay(m.picker.Grid()); got != 0 {
		t.Errorf("today = %d after midnight, want no highlight", got)
	}

	m, _ = press(t, m, "3", "t")
	if got := todayDay(m.picker.Grid()); got != 1 {
		t.Errorf("today = %d after jumping to today, want 1", got)
	}
}

func TestOpeningBookingsRefreshesToday(t *testing.T) {
	now := time.Date(2024, time.March, 2, 23, 30, 0, 0, time.Local)
	m := newTestModel(t, nil, testConfig(t), WithClock(func() time.Time { return now }))

	now = now.Add(time.Hour)
	m, _ = press(t, m, "3")
	if m.screen != ScreenBookings {
		t.Fatalf("screen = %v, want Bookings", m.screen)
	}
	if got := todayDay(m.picker.Grid()); got != 3 {
		t.Errorf("today = %d, want 3", got)
	}
}

func fillBookingForm(m Model, name string) Model {
	m.form.inputs[inputName].SetValue(name)
	m.form.inputs[inputEmail].SetValue("ada@example.com")
	m.form.inputs[inputPhone].SetValue("01524 123456")
	m.form.inputs[inputAttendees].SetValue("80")
	return m
}

func TestSubmitBooking(t *testing.T) {
	cfg := testConfig(t)
	repo := openTestRepo(t, cfg)
	m := newTestModel(t, repo, cfg)
	m, _ = press(t, m, "3", "ctrl+right")
	m = fillBookingForm(m, "Ada Lovelace")

	m, cmd := press(t, m, "ctrl+s")
	submitted := find[commands.BookingSubmittedMsg](t, collect(cmd))
	b := submitted.Booking
	if b.TotalCost != 500+80*10 {
		t.Errorf("TotalCost = %d, want 1300", b.TotalCost)
	}
	if b.DateString() != "2024-03-02" {
		t.Errorf("date = %s", b.DateString())
	}

	m, cmd = update(t, m, submitted)
	if m.dialogType != DialogInfo {
		t.Errorf("dialogType = %v, want DialogInfo", m.dialogType)
	}
	if !strings.Contains(m.dialogBody, b.ID) {
		t.Errorf("dialog should quote the reference, got %q", m.dialogBody)
	}
	if v := m.form.inputs[inputName].Value(); v != "" {
		t.Errorf("form not reset, name = %q", v)
	}

	day := find[commands.DayBookingsMsg](t, collect(cmd))
	m, _ = update(t, m, day)
	if len(m.dayBookings) != 1 || m.dayBookings[0].ID != b.ID {
		t.Errorf("dayBookings = %+v", m.dayBookings)
	}

	m, _ = press(t, m, "enter")
	if m.dialogType != DialogNone {
		t.Errorf("enter should close the dialog")
	}
}

func TestSubmitBookingValidation(t *testing.T) {
	tests := []struct {
		name      string
		attendees string
		custName  string
	}{
		{"non-numeric attendees", "", "Ada"},
		{"missing name", "80", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			repo := openTestRepo(t, cfg)
			m := newTestModel(t, repo, cfg)
			m, _ = press(t, m, "3", "ctrl+right")
			m = fillBookingForm(m, tt.custName)
			m.form.inputs[inputAttendees].SetValue(tt.attendees)

			m, cmd := press(t, m, "ctrl+s")
			for _, msg := range collect(cmd) {
				m, _ = update(t, m, msg)
			}
			if m.dialogType != DialogError {
				t.Fatalf("dialogType = %v, want DialogError", m.dialogType)
			}
			if v := m.form.inputs[inputEmail].Value(); v == "" {
				t.Error("a rejected booking should keep the form contents")
			}
		})
	}
}

func TestBookingFormFocusAndPayment(t *testing.T) {
	m := newTestModel(t, nil, testConfig(t))
	m, _ = press(t, m, "3", "ctrl+right")

	for i := 0; i < fieldPayment; i++ {
		m, _ = press(t, m, "tab")
	}
	if m.form.Focus() != fieldPayment {
		t.Fatalf("focus = %d, want payment", m.form.Focus())
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.form.PaymentType(); got != config.PaymentTypes[1] {
		t.Errorf("payment = %q, want %q", got, config.PaymentTypes[1])
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.form.PaymentType(); got != config.PaymentTypes[len(config.PaymentTypes)-1] {
		t.Errorf("payment should wrap, got %q", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.form.Focus() != fieldAttendees {
		t.Errorf("shift+tab: focus = %d", m.form.Focus())
	}
}

func TestInquiryDraft(t *testing.T) {
	d := &inquiryDraft{
		Organisation: "Lancaster University",
		Contact:      "Grace Hopper",
		Email:        "grace@example.com",
		Kind:         booking.KindCorporate,
		Preferred:    "2024-05-01",
		Message:      "Graduation concert",
	}
	q, err := d.Inquiry(fixedNow)
	if err != nil {
		t.Fatalf("Inquiry: %v", err)
	}
	if q.PreferredDate == nil || q.PreferredDate.Format("2006-01-02") != "2024-05-01" {
		t.Errorf("PreferredDate = %v", q.PreferredDate)
	}

	d.Preferred = ""
	q, err = d.Inquiry(fixedNow)
	if err != nil || q.PreferredDate != nil {
		t.Errorf("empty preferred date: %v, %v", q, err)
	}

	d.Preferred = "someday"
	if _, err := d.Inquiry(fixedNow); err == nil {
		t.Error("expected an error for an unparseable date")
	}
}

func TestContactTabs(t *testing.T) {
	m := newTestModel(t, nil, testConfig(t))
	m, _ = press(t, m, "5")
	if m.contactTab != TabMessage {
		t.Fatalf("contactTab = %v, want %v", m.contactTab, TabMessage)
	}
	m, _ = press(t, m, "ctrl+right")
	if m.contactTab != TabNewsletter {
		t.Errorf("ctrl+right: contactTab = %v", m.contactTab)
	}
	m, _ = press(t, m, "ctrl+right")
	if m.contactTab != TabMessage {
		t.Errorf("tabs should wrap, got %v", m.contactTab)
	}
	m, _ = press(t, m, "ctrl+left")
	if m.contactTab != TabNewsletter {
		t.Errorf("ctrl+left: contactTab = %v", m.contactTab)
	}
}

// completeContact marks the active contact form as submitted and runs the
// completion handler.
func completeContact(t *testing.T, m Model) (Model, tea.Cmd) {
	t.Helper()
	m.contact.form(m.contactTab).State = huh.StateCompleted
	updated, cmd := m.updateContact(struct{}{})
	model, ok := updated.(Model)
	if !ok {
		t.Fatalf("updateContact returned %T, want Model", updated)
	}
	return model, cmd
}

func TestSendContactMessage(t *testing.T) {
	cfg := testConfig(t)
	repo := openTestRepo(t, cfg)
	m := newTestModel(t, repo, cfg)
	m, _ = press(t, m, "5")
	*m.contact.message = messageDraft{
		Name:  "Ada Lovelace",
		Email: "ada@example.com",
		Body:  "Is the grand piano available?",
	}

	m, cmd := completeContact(t, m)
	if m.contact.message.Name != "" {
		t.Error("message form should be cleared after submitting")
	}
	sent := find[commands.MessageSentMsg](t, collect(cmd))
	m, _ = update(t, m, sent)
	if m.dialogType != DialogInfo || m.dialogTitle != "Message sent" {
		t.Errorf("dialog = %v %q", m.dialogType, m.dialogTitle)
	}
	if !strings.Contains(m.dialogBody, "Ada Lovelace") {
		t.Errorf("dialogBody = %q", m.dialogBody)
	}

	stored, err := repo.ListMessages(context.Background())
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(stored) != 1 || stored[0].Body != "Is the grand piano available?" {
		t.Errorf("stored messages = %+v", stored)
	}
}

func TestSubscribeNewsletter(t *testing.T) {
	cfg := testConfig(t)
	repo := openTestRepo(t, cfg)
	m := newTestModel(t, repo, cfg)
	m, _ = press(t, m, "5", "ctrl+right")
	*m.contact.signup = signupDraft{
		Name:      "Grace Hopper",
		Email:     "Grace@Example.com",
		Interests: []booking.Interest{booking.InterestPromotions, booking.InterestConcerts},
	}

	m, cmd := completeContact(t, m)
	subscribed := find[commands.SubscribedMsg](t, collect(cmd))
	m, _ = update(t, m, subscribed)
	if m.dialogType != DialogInfo || m.dialogTitle != "Subscription successful" {
		t.Errorf("dialog = %v %q", m.dialogType, m.dialogTitle)
	}
	if !strings.Contains(m.dialogBody, "Concerts, Promotions") {
		t.Errorf("dialogBody = %q", m.dialogBody)
	}

	subs, err := repo.ListSubscriptions(context.Background())
	if err != nil {
		t.Fatalf("ListSubscriptions: %v", err)
	}
	if len(subs) != 1 || subs[0].Email != "grace@example.com" {
		t.Errorf("subscriptions = %+v", subs)
	}
}

func TestContactValidation(t *testing.T) {
	tests := []struct {
		name string
		tab  ContactTab
		fill func(m Model)
	}{
		{"message without body", TabMessage, func(m Model) {
			*m.contact.message = messageDraft{Name: "Ada", Email: "ada@example.com"}
		}},
		{"signup without email", TabNewsletter, func(m Model) {
			*m.contact.signup = signupDraft{Name: "Grace"}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			repo := openTestRepo(t, cfg)
			m := newTestModel(t, repo, cfg)
			m, _ = press(t, m, "5")
			m.contactTab = tt.tab
			tt.fill(m)

			m, _ = completeContact(t, m)
			if m.dialogType != DialogError || m.dialogTitle != "Missing information" {
				t.Errorf("dialog = %v %q", m.dialogType, m.dialogTitle)
			}
			msgs, _ := repo.ListMessages(context.Background())
			subs, _ := repo.ListSubscriptions(context.Background())
			if len(msgs)+len(subs) != 0 {
				t.Errorf("nothing should be stored, got %d messages and %d subscriptions", len(msgs), len(subs))
			}
		})
	}
}

func TestAbortContactReturnsHome(t *testing.T) {
	m := newTestModel(t, nil, testConfig(t))
	m, _ = press(t, m, "5")
	m.contact.message.Name = "Ada"
	m.contact.messageForm.State = huh.StateAborted
	updated, _ := m.updateContact(struct{}{})
	m = updated.(Model)
	if m.screen != ScreenHome {
		t.Errorf("screen = %v, want Home", m.screen)
	}
	if m.contact.message.Name != "" {
		t.Error("aborting should clear the draft")
	}
}

func TestSubscribedText(t *testing.T) {
	sub := &booking.Subscription{Name: "Grace"}
	if got := subscribedText(sub); strings.Contains(got, "Topics") {
		t.Errorf("no interests should omit topics: %q", got)
	}
	sub.Interests = []booking.Interest{booking.InterestConcerts}
	if got := subscribedText(sub); !strings.Contains(got, "Topics: Concerts") {
		t.Errorf("subscribedText = %q", got)
	}
}

func TestStaffLogin(t *testing.T) {
	cfg := testConfig(t)
	if err := staff.WriteFile(cfg.Staff.AuthFile, "admin", "s3cret", false); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	repo := openTestRepo(t, cfg)
	m := newTestModel(t, repo, cfg)
	m, _ = press(t, m, "4")

	m.login.user.SetValue("admin")
	m, _ = press(t, m, "enter")
	if m.login.focus != 1 {
		t.Fatalf("enter on username should move to password")
	}

	m.login.pass.SetValue("wrong")
	m, cmd := press(t, m, "enter")
	login := find[commands.LoginMsg](t, collect(cmd))
	m, _ = update(t, m, login)
	if m.screen != ScreenStaff || m.user != "" {
		t.Fatalf("bad password logged in: screen %v user %q", m.screen, m.user)
	}
	if m.login.err == "" {
		t.Error("expected a login error")
	}

	m.login.pass.SetValue("s3cret")
	m, cmd = press(t, m, "enter")
	login = find[commands.LoginMsg](t, collect(cmd))
	m, _ = update(t, m, login)
	if m.screen != ScreenManage || m.user != "admin" {
		t.Fatalf("screen %v user %q after login", m.screen, m.user)
	}

	m, _ = press(t, m, "esc")
	if m.screen != ScreenHome || m.user != "" {
		t.Errorf("esc should log out, screen %v user %q", m.screen, m.user)
	}
}

func TestStaffLoginWithoutCredentials(t *testing.T) {
	m := newTestModel(t, nil, testConfig(t))
	m, _ = update(t, m, commands.LoginMsg{Username: "admin", Err: staff.ErrNoCredentials})
	if !strings.Contains(m.login.err, "staff passwd") {
		t.Errorf("login err = %q", m.login.err)
	}
}

func seedBookings(t *testing.T, repo booking.Repository, days ...int) []*booking.Booking {
	t.Helper()
	pricing := booking.Pricing{Base: 500, PerAttendee: 10, MaxAttendees: 500}
	var out []*booking.Booking
	for _, day := range days {
		b, err := booking.New(booking.Draft{
			Name:        "Customer",
			Email:       "c@example.com",
			Phone:       "01524 000000",
			PaymentType: "Invoice",
			Attendees:   10,
			Date:        time.Date(2024, time.April, day, 0, 0, 0, 0, time.Local),
		}, pricing)
		if err != nil {
			t.Fatalf("booking.New: %v", err)
		}
		if err := repo.CreateBooking(context.Background(), b); err != nil {
			t.Fatalf("CreateBooking: %v", err)
		}
		out = append(out, b)
	}
	return out
}

func TestManageBookings(t *testing.T) {
	cfg := testConfig(t)
	repo := openTestRepo(t, cfg)
	seeded := seedBookings(t, repo, 3, 10)

	m := newTestModel(t, repo, cfg)
	m.user = "admin"
	updated, cmd := m.openScreen(ScreenStaff, "test")
	m = updated.(Model)
	if m.screen != ScreenManage {
		t.Fatalf("logged-in staff should land on Manage, got %v", m.screen)
	}
	m, _ = update(t, m, find[commands.BookingsLoadedMsg](t, collect(cmd)))
	if len(m.managed) != 2 || len(m.table.Rows()) != 2 {
		t.Fatalf("managed %d rows %d", len(m.managed), len(m.table.Rows()))
	}
	if m.managed[0].ID != seeded[0].ID {
		t.Errorf("expected bookings in date order")
	}

	m, cmd = press(t, m, "a")
	changed := find[commands.StatusChangedMsg](t, collect(cmd))
	if changed.ID != seeded[0].ID || changed.Status != booking.StatusApproved {
		t.Fatalf("StatusChangedMsg = %+v", changed)
	}
	m, cmd = update(t, m, changed)
	m, _ = update(t, m, find[commands.BookingsLoadedMsg](t, collect(cmd)))
	if m.managed[0].Status != booking.StatusApproved {
		t.Errorf("status = %v after approve", m.managed[0].Status)
	}

	// Decided bookings are not changed again.
	_, cmd = press(t, m, "d")
	if _, ok := cmd().(commands.StatusMsgCmd); !ok {
		t.Errorf("deny on an approved booking should only report status")
	}

	m, cmd = press(t, m, "f")
	if m.filter != booking.StatusPending {
		t.Fatalf("filter = %q, want Pending", m.filter)
	}
	m, _ = update(t, m, find[commands.BookingsLoadedMsg](t, collect(cmd)))
	if len(m.managed) != 1 || m.managed[0].ID != seeded[1].ID {
		t.Errorf("pending filter: %+v", m.managed)
	}

	// A listing for a stale filter is dropped.
	m, _ = update(t, m, commands.BookingsLoadedMsg{Status: booking.StatusDenied})
	if len(m.managed) != 1 {
		t.Errorf("stale listing replaced the table")
	}
}

func TestInitDialog(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	state := InitState{
		NeedsInit:     true,
		ConfigMissing: true,
		DBMissing:     true,
		ConfigPath:    filepath.Join(dir, "config.toml"),
		DBPath:        filepath.Join(dir, "data", "boxoffice.db"),
	}
	m := newTestModel(t, nil, cfg, WithInitState(state))
	if m.dialogType != DialogInit {
		t.Fatalf("dialogType = %v, want DialogInit", m.dialogType)
	}
	if !strings.Contains(ansi.Strip(m.View()), "database") {
		t.Error("init dialog should describe what will be created")
	}

	// Screen keys are swallowed while the dialog is up.
	m, _ = press(t, m, "3")
	if m.screen != ScreenHome {
		t.Errorf("screen changed under the dialog")
	}

	m, _ = press(t, m, "enter")
	if m.dialogType != DialogNone {
		t.Fatalf("dialog still open: %q", m.dialogBody)
	}
	if m.repo == nil {
		t.Fatal("storage was not opened")
	}
	t.Cleanup(func() { _ = m.repo.Close() })
	if missing, _ := pathMissing(state.ConfigPath); missing {
		t.Error("config file was not written")
	}
}

func TestErrorMessages(t *testing.T) {
	m := newTestModel(t, nil, testConfig(t))

	m, _ = update(t, m, commands.ErrMsg{Err: errors.New("disk full")})
	if m.dialogType != DialogNone || !strings.Contains(m.statusMsg, "disk full") {
		t.Errorf("plain errors go to the status line: dialog %v status %q", m.dialogType, m.statusMsg)
	}

	m, _ = update(t, m, commands.ErrMsg{Err: booking.ErrInvalidEmail})
	if m.dialogType != DialogError {
		t.Errorf("validation errors open a dialog")
	}
}

func TestStatusMessageClears(t *testing.T) {
	m := newTestModel(t, nil, testConfig(t))
	m, _ = update(t, m, commands.StatusMsgCmd{Msg: "hello"})
	if m.statusMsg != "hello" {
		t.Fatalf("statusMsg = %q", m.statusMsg)
	}
	m.statusTime = time.Now().Add(-time.Second)
	m, _ = update(t, m, commands.ClearStatusMsg{})
	if m.statusMsg != "" {
		t.Errorf("statusMsg = %q after clear", m.statusMsg)
	}
}

func TestViewLayout(t *testing.T) {
	m := newTestModel(t, nil, testConfig(t))
	m, _ = press(t, m, "3")

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	if len(lines) != m.height {
		t.Errorf("view has %d lines, want %d", len(lines), m.height)
	}
	if !strings.Contains(lines[0], "Lancaster's Music Hall") {
		t.Errorf("title row = %q", lines[0])
	}
	if !strings.Contains(lines[2], TabCalendar.String()) {
		t.Errorf("tab bar row = %q", lines[2])
	}

	// The picker's prev arrow sits inside the first nav cell at the origin.
	row := lines[pickerOriginY]
	i := strings.Index(row, "◀")
	if i < 0 {
		t.Fatalf("picker header not on row %d: %q", pickerOriginY, row)
	}
	if col := lipgloss.Width(row[:i]); col < pickerOriginX || col >= pickerOriginX+3 {
		t.Errorf("prev arrow at column %d", col)
	}
	if !strings.Contains(row, "March 2024") {
		t.Errorf("picker title missing: %q", row)
	}
}

func TestViewScreens(t *testing.T) {
	tests := []struct {
		keys []string
		want string
	}{
		{nil, "Welcome to Lancaster's Music Hall"},
		{[]string{"2"}, "Rates"},
		{[]string{"3", "ctrl+right"}, "Total cost"},
		{[]string{"3", "ctrl+right", "ctrl+right"}, "Organisation"},
		{[]string{"4"}, "Staff login"},
		{[]string{"5"}, "Send Us a Message"},
		{[]string{"5", "ctrl+right"}, "Interests"},
		{nil, "Featured Events"},
		{nil, "Jazz Night"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			m := newTestModel(t, nil, testConfig(t))
			m, _ = press(t, m, tt.keys...)
			if v := ansi.Strip(m.View()); !strings.Contains(v, tt.want) {
				t.Errorf("view missing %q:\n%s", tt.want, v)
			}
		})
	}
}
