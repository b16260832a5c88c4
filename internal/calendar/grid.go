package calendar

import "strconv"

// Grid dimensions: six weeks of seven days.
const (
	Rows = 6
	Cols = 7
)

// WeekdayLabels are the column headers, Sunday first.
var WeekdayLabels = [Cols]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Membership tags which month a grid cell belongs to.
type Membership int

const (
	Previous Membership = iota
	Current
	Next
)

// Offset returns the month offset of the membership: -1, 0 or +1.
func (m Membership) Offset() int {
	switch m {
	case Previous:
		return -1
	case Next:
		return 1
	default:
		return 0
	}
}

func (m Membership) String() string {
	switch m {
	case Previous:
		return "previous"
	case Next:
		return "next"
	default:
		return "current"
	}
}

// Cell is one day position in the grid.
type Cell struct {
	Row        int
	Col        int
	Day        int
	Label      string
	Membership Membership
	Today      bool
	Selected   bool
	Weekend    bool
}

// Grid is the full 6x7 projection of a displayed month.
type Grid struct {
	Month        Month
	FirstWeekday int
	DaysInMonth  int
	Cells        [Rows][Cols]Cell
}

// BuildGrid projects month onto a 6x7 grid. Leading cells of row 0 carry the
// previous month's trailing days, the current month runs row-major from
// column FirstWeekday, and whatever is left is filled with the next month.
func BuildGrid(month Month, selected, today Date) Grid {
	g := Grid{
		Month:        month,
		FirstWeekday: month.FirstWeekday(),
		DaysInMonth:  month.Days(),
	}
	daysInPrev := month.AddMonths(-1).Days()

	for pos := 0; pos < Rows*Cols; pos++ {
		row, col := pos/Cols, pos%Cols
		cell := Cell{
			Row:     row,
			Col:     col,
			Weekend: col == 0 || col == Cols-1,
		}

		switch {
		case pos < g.FirstWeekday:
			cell.Membership = Previous
			cell.Day = daysInPrev - g.FirstWeekday + pos + 1
		case pos < g.FirstWeekday+g.DaysInMonth:
			cell.Membership = Current
			cell.Day = pos - g.FirstWeekday + 1
			date := month.Date(cell.Day)
			cell.Today = date == today
			cell.Selected = date == selected
		default:
			cell.Membership = Next
			cell.Day = pos - g.FirstWeekday - g.DaysInMonth + 1
		}
		cell.Label = strconv.Itoa(cell.Day)

		g.Cells[row][col] = cell
	}

	return g
}

// Cell returns the cell at (row, col).
func (g Grid) Cell(row, col int) (Cell, bool) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return Cell{}, false
	}
	return g.Cells[row][col], true
}

// SelectedCell returns the position of the selected current-month cell, if
// the selection falls within the displayed month.
func (g Grid) SelectedCell() (row, col int, ok bool) {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if g.Cells[r][c].Selected {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// ResolveMembership decides which month a clicked cell belongs to.
//
// Only row 0 is ever checked for the previous month. Everything else falls
// through to the position check against the last current-month cell.
func ResolveMembership(month Month, row, col int) Membership {
	firstWeekday := month.FirstWeekday()
	if row == 0 && col < firstWeekday {
		return Previous
	}

	dayPosition := row*Cols + col
	lastDayPosition := firstWeekday + month.Days() - 1
	if dayPosition > lastDayPosition {
		return Next
	}
	return Current
}
