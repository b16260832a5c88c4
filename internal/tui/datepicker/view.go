package datepicker

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/lancaster-music-hall/boxoffice/internal/calendar"
)

// Layout, in terminal cells. Line 0 is the header, line 1 the weekday
// names, lines 2-7 the six week rows.
const (
	CellWidth   = 5
	Width       = CellWidth * calendar.Cols
	headerLines = 2
	Height      = headerLines + calendar.Rows

	navWidth      = 3
	yearCols      = 4
	yearRows      = 5
	yearCellWidth = 8
)

// View renders the picker.
func (m Model) View() string {
	lines := make([]string, 0, Height)
	lines = append(lines, m.viewHeader())
	if m.yearsVisible {
		lines = append(lines, m.viewYears()...)
		return strings.Join(lines, "\n")
	}

	lines = append(lines, m.viewWeekdays())
	if m.transition.Active() {
		lines = append(lines, m.viewSlide()...)
	} else {
		lines = append(lines, m.viewBody(m.grid, m.hover)...)
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewHeader() string {
	s := m.Styles
	titleWidth := Width - 3*navWidth
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.Nav.Width(navWidth).Align(lipgloss.Center).Render("◀"),
		s.Title.Width(titleWidth).Align(lipgloss.Center).Render(m.displayed.String()),
		s.Nav.Width(navWidth).Align(lipgloss.Center).Render("▼"),
		s.Nav.Width(navWidth).Align(lipgloss.Center).Render("▶"),
	)
}

func (m Model) viewWeekdays() string {
	var b strings.Builder
	for _, name := range calendar.WeekdayLabels {
		b.WriteString(m.Styles.Weekday.Width(CellWidth).Align(lipgloss.Center).Render(name))
	}
	return b.String()
}

// viewBody renders the six week rows, each exactly Width cells wide.
func (m Model) viewBody(g calendar.Grid, hover Pos) []string {
	lines := make([]string, calendar.Rows)
	for row := 0; row < calendar.Rows; row++ {
		var b strings.Builder
		for col := 0; col < calendar.Cols; col++ {
			cell := g.Cells[row][col]
			hovered := hover.Row == row && hover.Col == col
			b.WriteString(m.cellStyle(cell, hovered).Width(CellWidth).Align(lipgloss.Center).Render(cell.Label))
		}
		lines[row] = b.String()
	}
	return lines
}

func (m Model) cellStyle(cell calendar.Cell, hovered bool) lipgloss.Style {
	s := m.Styles
	switch {
	case cell.Selected:
		return s.Selected
	case hovered:
		return s.Hovered
	case cell.Today:
		return s.Today
	case cell.Membership != calendar.Current:
		if cell.Weekend {
			return s.OtherMonth.Background(s.Weekend.GetBackground())
		}
		return s.OtherMonth
	case cell.Weekend:
		return s.Weekend
	default:
		return s.Day
	}
}

// SlideOffset returns how many columns the outgoing month has moved.
func (m Model) SlideOffset() int {
	if !m.transition.Active() || m.steps == 0 {
		return 0
	}
	return Width * m.transition.Progress / m.steps
}

// viewSlide composites the outgoing and incoming months. Moving forward the
// current month slides left with the next one entering from the right;
// moving back the previous month enters from the left.
func (m Model) viewSlide() []string {
	dir := m.transition.Direction
	incoming := calendar.BuildGrid(m.displayed.AddMonths(int(dir)), m.selected, m.today())
	cur := m.viewBody(m.grid, NoPos)
	next := m.viewBody(incoming, NoPos)
	offset := m.SlideOffset()

	lines := make([]string, len(cur))
	for i := range cur {
		if dir == DirectionNext {
			lines[i] = ansi.Cut(cur[i], offset, Width) + ansi.Cut(next[i], 0, offset)
		} else {
			lines[i] = ansi.Cut(next[i], Width-offset, Width) + ansi.Cut(cur[i], 0, Width-offset)
		}
	}
	return lines
}

// viewYears renders the title, a 5x4 year grid and the Close control.
func (m Model) viewYears() []string {
	s := m.Styles
	lines := []string{s.YearTitle.Width(Width).Align(lipgloss.Center).Render("Select year")}

	current := m.today().Year()
	pad := s.Day.Render(strings.Repeat(" ", Width-yearCols*yearCellWidth))
	years := m.years.Years()
	for row := 0; row < yearRows; row++ {
		var b strings.Builder
		for col := 0; col < yearCols; col++ {
			idx := row*yearCols + col
			if idx >= len(years) {
				b.WriteString(s.Year.Render(strings.Repeat(" ", yearCellWidth)))
				continue
			}
			y := years[idx]
			st := s.Year
			switch {
			case y == m.selected.Year():
				st = s.YearSelected
			case y == current:
				st = s.YearCurrent
			}
			if idx == m.yearCursor {
				st = st.Reverse(true)
			}
			b.WriteString(st.Width(yearCellWidth).Align(lipgloss.Center).Render(strconv.Itoa(y)))
		}
		b.WriteString(pad)
		lines = append(lines, b.String())
	}

	closeStyle := s.Close
	if m.yearCursor == len(years) {
		closeStyle = closeStyle.Reverse(true)
	}
	lines = append(lines, closeStyle.Width(Width).Align(lipgloss.Center).Render("Close"))
	return lines
}
