// Package tui provides the terminal user interface for boxoffice.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lancaster-music-hall/boxoffice/internal/booking"
	"github.com/lancaster-music-hall/boxoffice/internal/config"
	"github.com/lancaster-music-hall/boxoffice/internal/debuglog"
	"github.com/lancaster-music-hall/boxoffice/internal/tui/commands"
	"github.com/lancaster-music-hall/boxoffice/internal/tui/datepicker"
	"github.com/lancaster-music-hall/boxoffice/internal/tui/theme"
	"github.com/lancaster-music-hall/boxoffice/internal/venue"
)

// Screen identifies a top-level page.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenVenues
	ScreenBookings
	ScreenStaff  // Login
	ScreenManage // Only reachable after login
	ScreenContact
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "Home"
	case ScreenVenues:
		return "Venues"
	case ScreenBookings:
		return "Bookings"
	case ScreenStaff:
		return "Staff"
	case ScreenManage:
		return "Manage"
	case ScreenContact:
		return "Contact"
	default:
		return "Unknown"
	}
}

// BookingTab identifies a tab on the Bookings screen.
type BookingTab int

const (
	TabCalendar BookingTab = iota
	TabBooking
	TabInquiry
	tabCount
)

func (t BookingTab) String() string {
	switch t {
	case TabCalendar:
		return "Calendar"
	case TabBooking:
		return "Make a Booking"
	case TabInquiry:
		return "Inquiry"
	default:
		return "Unknown"
	}
}

// DialogType identifies the kind of dialog shown over the screen.
type DialogType int

const (
	DialogNone DialogType = iota
	DialogInfo
	DialogError
	DialogInit // First-run setup
)

// Layout of the Bookings screen. The picker's top-left corner is fixed so
// mouse events can be mapped onto it.
const (
	pickerOriginX = 2
	pickerOriginY = 4
	statusTimeout = 3 * time.Second
	errorTimeout  = 5 * time.Second
	clockInterval = time.Minute
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo    booking.Repository
	config  *config.Config
	pricing booking.Pricing
	theme   *theme.Theme
	styles  *Styles
	nowFunc func() time.Time

	// Navigation
	screen   Screen
	tab      BookingTab
	homeItem int

	// Calendar tab
	picker      datepicker.Model
	dayBookings []*booking.Booking

	// Bookings screen forms
	form    bookingForm
	inquiry inquiryForm

	// Contact screen
	contact    contactForms
	contactTab ContactTab

	// Venues
	venues     []venue.Venue
	venueIndex int
	featured   []venue.Event

	// Staff
	login   loginForm
	user    string // Empty until logged in
	table   table.Model
	managed []*booking.Booking
	filter  booking.Status

	// Dialog state
	dialogType  DialogType
	dialogTitle string
	dialogBody  string
	initState   InitState
	overlay     OverlayModel

	help help.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusTime time.Time // When to clear message

	err error
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithInitState sets the startup initialization state.
func WithInitState(state InitState) ModelOption {
	return func(m *Model) {
		m.initState = state
		if state.NeedsInit {
			m.dialogType = DialogInit
			m.dialogTitle = "Welcome to boxoffice"
		}
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) ModelOption {
	return func(m *Model) {
		m.nowFunc = now
	}
}

// New creates a new TUI model.
func New(repo booking.Repository, cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load(theme.DefaultName)
	}
	styles := NewStyles(t)

	venues, err := venue.All()
	if err != nil {
		debuglog.Error("loading venues", err)
	}
	featured, err := venue.Featured()
	if err != nil {
		debuglog.Error("loading featured events", err)
	}

	m := &Model{
		repo:   repo,
		config: cfg,
		pricing: booking.Pricing{
			Base:         cfg.Booking.BaseCost,
			PerAttendee:  cfg.Booking.PerAttendeeCost,
			MaxAttendees: cfg.Booking.MaxAttendees,
		},
		theme:    t,
		styles:   styles,
		nowFunc:  time.Now,
		screen:   ScreenHome,
		venues:   venues,
		featured: featured,
		overlay:  NewOverlayModel(),
		help:     help.New(),
		login:    newLoginForm(styles),
		table:    newBookingTable(styles),
		contact:  newContactForms(),
	}

	for _, opt := range opts {
		opt(m)
	}

	m.picker = datepicker.New(
		datepicker.WithClock(m.nowFunc),
		datepicker.WithAnimation(cfg.AnimationDuration(), cfg.Calendar.AnimationSteps),
		datepicker.WithHoverDebounce(cfg.HoverDebounce()),
		datepicker.WithYearWindow(cfg.Calendar.YearWindowBefore, cfg.Calendar.YearWindowAfter),
		datepicker.WithStyles(styles.Calendar),
	)
	m.picker.SetOrigin(pickerOriginX, pickerOriginY)
	m.form = newBookingForm(cfg, styles, m.picker.SelectedDate())
	m.inquiry = newInquiryForm(m.picker.SelectedDate())

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	if m.dialogType == DialogInit || m.repo == nil {
		return tea.Batch(m.inquiry.form.Init(), clockTick())
	}
	return tea.Batch(m.loadSelectedDay(), m.inquiry.form.Init(), clockTick())
}

func (m Model) loadSelectedDay() tea.Cmd {
	if m.repo == nil {
		return nil
	}
	return commands.LoadDayBookings(m.repo, m.picker.SelectedDate().Time(nil))
}

// Run starts the TUI.
func Run(repo booking.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo booking.Repository, cfg *config.Config, debug bool) error {
	if err := debuglog.Init(debug); err != nil {
		return err
	}
	defer debuglog.Close()

	initialRepo := repo
	var initState InitState

	if repo == nil {
		state, err := DetectInitState(cfg)
		if err != nil {
			return err
		}
		initState = state
		if !state.NeedsInit {
			repo, err = openRepo(state.DBPath)
			if err != nil {
				return err
			}
		}
	}

	model := New(repo, cfg, WithInitState(initState))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	finalModel, err := p.Run()
	if initialRepo == nil {
		if m, ok := finalModel.(Model); ok && m.repo != nil {
			_ = m.repo.Close()
		}
	}
	return err
}
