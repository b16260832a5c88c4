// Package datepicker provides a month-grid date picker for Bubble Tea with
// animated month transitions, hover tracking and a year-selection overlay.
package datepicker

import (
	"sync/atomic"
	"time"

	"github.com/lancaster-music-hall/boxoffice/internal/calendar"
)

// Defaults match the desktop widget this replaces.
const (
	DefaultAnimationDuration = 300 * time.Millisecond
	DefaultAnimationSteps    = 30
	DefaultHoverDebounce     = 20 * time.Millisecond
	DefaultYearsBefore       = 10
	DefaultYearsAfter        = 9
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Direction is the sign of a month transition.
type Direction int

const (
	DirectionNone     Direction = 0
	DirectionPrevious Direction = -1
	DirectionNext     Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirectionPrevious:
		return "previous"
	case DirectionNext:
		return "next"
	default:
		return "none"
	}
}

// Transition is idle when Direction is DirectionNone, otherwise it is
// animating with Progress counting up to the model's step budget.
type Transition struct {
	Direction Direction
	Progress  int
}

// Active reports whether a slide is in flight.
func (t Transition) Active() bool {
	return t.Direction != DirectionNone
}

// Pos is a grid position. NoPos means nothing is hovered.
type Pos struct {
	Row int
	Col int
}

// NoPos is the empty hover position.
var NoPos = Pos{Row: -1, Col: -1}

// Valid reports whether p lies on the 6x7 grid.
func (p Pos) Valid() bool {
	return p.Row >= 0 && p.Row < calendar.Rows && p.Col >= 0 && p.Col < calendar.Cols
}

// SelectionChangedMsg is emitted whenever a date is committed, either by a
// click or by SetSelectedDate. Old is always nil.
type SelectionChangedMsg struct {
	ID  int
	Old *calendar.Date
	New calendar.Date
}

// frameMsg advances a month transition by one step.
type frameMsg struct {
	id  int
	tag int
}

// hoverMsg applies the pending hover after the debounce delay.
type hoverMsg struct {
	id  int
	tag int
}

// Model is the date picker state. The zero value is not usable; call New.
type Model struct {
	id int

	displayed calendar.Month
	selected  calendar.Date
	grid      calendar.Grid

	transition Transition
	frameTag   int
	steps      int
	duration   time.Duration

	hover        Pos
	pendingHover Pos
	hoverPending bool
	hoverTag     int
	debounce     time.Duration

	yearsVisible bool
	years        calendar.YearWindow
	yearCursor   int
	yearsBefore  int
	yearsAfter   int

	originX int
	originY int

	now    func() time.Time
	KeyMap KeyMap
	Styles Styles
}

// Option configures a Model.
type Option func(*Model)

// WithAnimation sets the total slide duration and the number of frames.
func WithAnimation(duration time.Duration, steps int) Option {
	return func(m *Model) {
		if duration > 0 {
			m.duration = duration
		}
		if steps > 0 {
			m.steps = steps
		}
	}
}

// WithHoverDebounce sets the hover coalescing delay. Zero applies hover at once.
func WithHoverDebounce(d time.Duration) Option {
	return func(m *Model) {
		if d >= 0 {
			m.debounce = d
		}
	}
}

// WithYearWindow sets how many years before and after the current year the
// overlay lists.
func WithYearWindow(before, after int) Option {
	return func(m *Model) {
		m.yearsBefore = before
		m.yearsAfter = after
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

// WithStyles sets the render styles.
func WithStyles(s Styles) Option {
	return func(m *Model) {
		m.Styles = s
	}
}

// New returns a picker showing the current month with today selected.
func New(opts ...Option) Model {
	m := Model{
		id:           nextID(),
		steps:        DefaultAnimationSteps,
		duration:     DefaultAnimationDuration,
		debounce:     DefaultHoverDebounce,
		yearsBefore:  DefaultYearsBefore,
		yearsAfter:   DefaultYearsAfter,
		hover:        NoPos,
		pendingHover: NoPos,
		now:          time.Now,
		KeyMap:       DefaultKeyMap(),
		Styles:       DefaultStyles(),
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.selected = m.today()
	m.displayed = m.selected.YearMonth()
	m.rebuild()
	return m
}

// ID returns the picker's unique id.
func (m Model) ID() int {
	return m.id
}

// SelectedDate returns the committed date. Dates are values, so the caller
// cannot reach the picker's state through the result.
func (m Model) SelectedDate() calendar.Date {
	return m.selected
}

// DisplayedMonth returns the month currently shown in the grid.
func (m Model) DisplayedMonth() calendar.Month {
	return m.displayed
}

// Grid returns the current projection of the displayed month.
func (m Model) Grid() calendar.Grid {
	return m.grid
}

// Transition returns the animation state.
func (m Model) Transition() Transition {
	return m.transition
}

// Animating reports whether a month slide is in flight.
func (m Model) Animating() bool {
	return m.transition.Active()
}

// Steps returns the number of frames per slide.
func (m Model) Steps() int {
	return m.steps
}

// FrameInterval returns the delay between animation frames.
func (m Model) FrameInterval() time.Duration {
	interval := m.duration / time.Duration(m.steps)
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	return interval
}

// Hovered returns the hovered cell, or NoPos.
func (m Model) Hovered() Pos {
	return m.hover
}

// YearsVisible reports whether the year overlay replaces the grid.
func (m Model) YearsVisible() bool {
	return m.yearsVisible
}

// YearWindow returns the years offered by the overlay when it was last opened.
func (m Model) YearWindow() calendar.YearWindow {
	return m.years
}

// YearCursor returns the overlay cursor; an index into YearWindow().Years(),
// or the window length for the Close control.
func (m Model) YearCursor() int {
	return m.yearCursor
}

// SetOrigin records where the parent drew the picker, for mouse hit testing.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// Refresh recomputes the grid, picking up a new "today" after midnight.
func (m *Model) Refresh() {
	m.rebuild()
}

func (m Model) today() calendar.Date {
	return calendar.DateOf(m.now())
}

func (m *Model) rebuild() {
	m.grid = calendar.BuildGrid(m.displayed, m.selected, m.today())
}
