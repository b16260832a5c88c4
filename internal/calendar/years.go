package calendar

// YearWindow is the contiguous range of years offered by the year overlay.
type YearWindow struct {
	First int
	Last  int
}

// NewYearWindow returns the window [current-before, current+after].
func NewYearWindow(current, before, after int) YearWindow {
	return YearWindow{First: current - before, Last: current + after}
}

// Len returns the number of years in the window.
func (w YearWindow) Len() int {
	if w.Last < w.First {
		return 0
	}
	return w.Last - w.First + 1
}

// Years lists the window in ascending order.
func (w YearWindow) Years() []int {
	years := make([]int, 0, w.Len())
	for y := w.First; y <= w.Last; y++ {
		years = append(years, y)
	}
	return years
}

// Contains reports whether year is inside the window.
func (w YearWindow) Contains(year int) bool {
	return year >= w.First && year <= w.Last
}

// Index returns the position of year in Years(), or -1.
func (w YearWindow) Index(year int) int {
	if !w.Contains(year) {
		return -1
	}
	return year - w.First
}
