package datepicker

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lancaster-music-hall/boxoffice/internal/calendar"
	"github.com/lancaster-music-hall/boxoffice/internal/debuglog"
)

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles frames, hover timers, keys and mouse events.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		cmd := m.advance(msg)
		return m, cmd

	case hoverMsg:
		if msg.id != m.id || msg.tag != m.hoverTag {
			return m, nil
		}
		m.hoverPending = false
		if m.transition.Active() || m.yearsVisible {
			return m, nil
		}
		m.hover = m.pendingHover
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd
	}
	return m, nil
}

// Prev starts a slide to the previous month. Ignored while animating or
// while the year overlay is open.
func (m *Model) Prev() tea.Cmd {
	return m.startTransition(DirectionPrevious)
}

// Next starts a slide to the following month.
func (m *Model) Next() tea.Cmd {
	return m.startTransition(DirectionNext)
}

func (m *Model) startTransition(dir Direction) tea.Cmd {
	if m.transition.Active() || m.yearsVisible {
		return nil
	}
	m.transition = Transition{Direction: dir}
	m.frameTag++
	debuglog.TransitionStart(dir.String(), m.displayed.String(), m.steps, m.FrameInterval())
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	id, tag := m.id, m.frameTag
	return tea.Tick(m.FrameInterval(), func(time.Time) tea.Msg {
		return frameMsg{id: id, tag: tag}
	})
}

func (m *Model) advance(msg frameMsg) tea.Cmd {
	if msg.id != m.id || msg.tag != m.frameTag || !m.transition.Active() {
		return nil
	}
	m.transition.Progress++
	if m.transition.Progress < m.steps {
		return m.tick()
	}

	dir := m.transition.Direction
	m.displayed = m.displayed.AddMonths(int(dir))
	m.transition = Transition{}
	m.rebuild()
	debuglog.TransitionEnd(dir.String(), m.displayed.String())
	return nil
}

// SetSelectedDate commits d, realigns the displayed month to d and emits a
// SelectionChangedMsg. Any slide in flight is dropped.
func (m *Model) SetSelectedDate(d calendar.Date) tea.Cmd {
	if m.transition.Active() {
		m.transition = Transition{}
		m.frameTag++
	}
	m.selected = d
	m.displayed = d.YearMonth()
	m.rebuild()
	debuglog.SelectionChanged(d.String(), "programmatic")
	return m.selectionChanged(d)
}

// ClickCell commits the date shown at (row, col). Leading and trailing
// cells select a day of the adjacent month and move the view there.
func (m *Model) ClickCell(row, col int) tea.Cmd {
	if m.transition.Active() || m.yearsVisible {
		return nil
	}
	cell, ok := m.grid.Cell(row, col)
	if !ok {
		return nil
	}
	label := strings.TrimSpace(cell.Label)
	if label == "" {
		return nil
	}
	day, err := strconv.Atoi(label)
	if err != nil {
		debuglog.InvalidDay(cell.Label, row, col)
		return nil
	}

	offset := calendar.ResolveMembership(m.displayed, row, col).Offset()
	target := m.displayed.AddMonths(offset)
	m.selected = target.Date(day)
	m.displayed = target
	m.rebuild()
	debuglog.SelectionChanged(m.selected.String(), "click")
	return m.selectionChanged(m.selected)
}

func (m Model) selectionChanged(d calendar.Date) tea.Cmd {
	id := m.id
	return func() tea.Msg {
		return SelectionChangedMsg{ID: id, New: d}
	}
}

// ToggleYears opens the year overlay, rebuilding the year window around the
// current year, or closes it if already open. Ignored while animating.
func (m *Model) ToggleYears() {
	if m.yearsVisible {
		m.CloseYears()
		return
	}
	if m.transition.Active() {
		return
	}
	current := m.today().Year()
	m.years = calendar.NewYearWindow(current, m.yearsBefore, m.yearsAfter)
	m.yearCursor = m.years.Index(m.displayed.Year())
	if m.yearCursor < 0 {
		m.yearCursor = m.years.Index(current)
	}
	m.yearsVisible = true
	m.hover = NoPos
	debuglog.YearOverlay("open", m.displayed.Year())
}

// CloseYears hides the overlay without changing the displayed month.
func (m *Model) CloseYears() {
	if !m.yearsVisible {
		return
	}
	m.yearsVisible = false
	debuglog.YearOverlay("close", m.displayed.Year())
}

// ChooseYear moves the displayed month to year and closes the overlay.
// The selected date is unchanged.
func (m *Model) ChooseYear(year int) {
	if !m.yearsVisible || !m.years.Contains(year) {
		return
	}
	m.displayed = m.displayed.WithYear(year)
	m.rebuild()
	m.yearsVisible = false
	debuglog.YearOverlay("choose", year)
}

// Hover records the pointer over (row, col). With a debounce configured the
// change lands when the returned command fires; a timer already pending is
// not restarted, so bursts coalesce into one update.
func (m *Model) Hover(row, col int) tea.Cmd {
	if m.transition.Active() || m.yearsVisible {
		return nil
	}
	p := Pos{Row: row, Col: col}
	if !p.Valid() {
		p = NoPos
	}
	if m.debounce <= 0 {
		m.hover = p
		return nil
	}
	m.pendingHover = p
	if m.hoverPending {
		return nil
	}
	m.hoverPending = true
	m.hoverTag++
	id, tag := m.id, m.hoverTag
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return hoverMsg{id: id, tag: tag}
	})
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.yearsVisible {
		return m.handleYearKey(msg)
	}
	if m.transition.Active() {
		return nil
	}

	switch {
	case key.Matches(msg, m.KeyMap.Prev):
		return m.Prev()
	case key.Matches(msg, m.KeyMap.Next):
		return m.Next()
	case key.Matches(msg, m.KeyMap.Years):
		m.ToggleYears()
	case key.Matches(msg, m.KeyMap.Today):
		return m.SetSelectedDate(m.today())
	case key.Matches(msg, m.KeyMap.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.KeyMap.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.KeyMap.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.KeyMap.Right):
		m.moveCursor(0, 1)
	case key.Matches(msg, m.KeyMap.Choose):
		if m.hover.Valid() {
			return m.ClickCell(m.hover.Row, m.hover.Col)
		}
	}
	return nil
}

// moveCursor moves the keyboard hover, starting from the selected cell or
// the first of the month.
func (m *Model) moveCursor(dRow, dCol int) {
	if !m.hover.Valid() {
		if row, col, ok := m.grid.SelectedCell(); ok {
			m.hover = Pos{Row: row, Col: col}
		} else {
			m.hover = Pos{Row: 0, Col: m.grid.FirstWeekday}
		}
		return
	}
	m.hover = Pos{
		Row: clamp(m.hover.Row+dRow, 0, calendar.Rows-1),
		Col: clamp(m.hover.Col+dCol, 0, calendar.Cols-1),
	}
}

func (m *Model) handleYearKey(msg tea.KeyMsg) tea.Cmd {
	closeIdx := m.years.Len()
	switch {
	case key.Matches(msg, m.KeyMap.Close), key.Matches(msg, m.KeyMap.Years):
		m.CloseYears()
	case key.Matches(msg, m.KeyMap.Left):
		m.yearCursor = clamp(m.yearCursor-1, 0, closeIdx)
	case key.Matches(msg, m.KeyMap.Right):
		m.yearCursor = clamp(m.yearCursor+1, 0, closeIdx)
	case key.Matches(msg, m.KeyMap.Up):
		if m.yearCursor == closeIdx {
			m.yearCursor = closeIdx - 1
		} else {
			m.yearCursor = clamp(m.yearCursor-yearCols, 0, closeIdx)
		}
	case key.Matches(msg, m.KeyMap.Down):
		m.yearCursor = clamp(m.yearCursor+yearCols, 0, closeIdx)
	case key.Matches(msg, m.KeyMap.Choose):
		if m.yearCursor >= closeIdx {
			m.CloseYears()
		} else {
			m.ChooseYear(m.years.First + m.yearCursor)
		}
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	x, y := msg.X-m.originX, msg.Y-m.originY
	inside := x >= 0 && x < Width && y >= 0 && y < Height

	switch msg.Action {
	case tea.MouseActionMotion:
		if !inside {
			return m.Hover(-1, -1)
		}
		if m.yearsVisible {
			if idx, ok := yearAt(x, y, m.years.Len()); ok {
				m.yearCursor = idx
			}
			return nil
		}
		row, col, ok := cellAt(x, y)
		if !ok {
			return m.Hover(-1, -1)
		}
		return m.Hover(row, col)

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inside {
			return nil
		}
		if y == 0 {
			return m.clickHeader(x)
		}
		if m.yearsVisible {
			idx, ok := yearAt(x, y, m.years.Len())
			switch {
			case !ok:
			case idx == m.years.Len():
				m.CloseYears()
			default:
				m.ChooseYear(m.years.First + idx)
			}
			return nil
		}
		if row, col, ok := cellAt(x, y); ok {
			return m.ClickCell(row, col)
		}
	}
	return nil
}

func (m *Model) clickHeader(x int) tea.Cmd {
	switch {
	case x < navWidth:
		return m.Prev()
	case x >= Width-navWidth:
		return m.Next()
	case x >= Width-2*navWidth:
		m.ToggleYears()
	}
	return nil
}

// cellAt maps picker-local coordinates to a day cell.
func cellAt(x, y int) (row, col int, ok bool) {
	row = y - headerLines
	col = x / CellWidth
	if row < 0 || row >= calendar.Rows || col < 0 || col >= calendar.Cols {
		return 0, 0, false
	}
	return row, col, true
}

// yearAt maps picker-local coordinates to an overlay index. The Close
// control is index n.
func yearAt(x, y, n int) (int, bool) {
	row := y - headerLines
	if row == yearRows {
		return n, true
	}
	col := x / yearCellWidth
	if row < 0 || row >= yearRows || col >= yearCols {
		return 0, false
	}
	idx := row*yearCols + col
	if idx >= n {
		return 0, false
	}
	return idx, true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
