package calendar

import (
	"testing"
	"time"
)

func TestMonthAddMonths(t *testing.T) {
	tests := []struct {
		start Month
		n     int
		want  Month
	}{
		{NewMonth(2024, time.March), 1, NewMonth(2024, time.April)},
		{NewMonth(2024, time.December), 1, NewMonth(2025, time.January)},
		{NewMonth(2024, time.January), -1, NewMonth(2023, time.December)},
		{NewMonth(2024, time.June), -18, NewMonth(2022, time.December)},
		{NewMonth(2024, time.June), 0, NewMonth(2024, time.June)},
	}
	for _, tt := range tests {
		if got := tt.start.AddMonths(tt.n); got != tt.want {
			t.Errorf("%s.AddMonths(%d) = %s, want %s", tt.start, tt.n, got, tt.want)
		}
	}
}

func TestMonthImmutable(t *testing.T) {
	m := NewMonth(2024, time.March)
	_ = m.AddMonths(5)
	_ = m.WithYear(1990)
	if m != NewMonth(2024, time.March) {
		t.Errorf("month mutated to %s", m)
	}
}

func TestNewMonthNormalises(t *testing.T) {
	if got, want := NewMonth(2024, 13), NewMonth(2025, time.January); got != want {
		t.Errorf("NewMonth(2024, 13) = %s, want %s", got, want)
	}
	if got, want := NewMonth(2024, 0), NewMonth(2023, time.December); got != want {
		t.Errorf("NewMonth(2024, 0) = %s, want %s", got, want)
	}
}

func TestMonthWithYearKeepsMonth(t *testing.T) {
	got := NewMonth(2024, time.February).WithYear(2031)
	if got.Year() != 2031 || got.Month() != time.February {
		t.Errorf("WithYear = %s, want February 2031", got)
	}
	if got.Days() != 28 {
		t.Errorf("February 2031 has %d days, want 28", got.Days())
	}
}

func TestMonthBefore(t *testing.T) {
	a := NewMonth(2024, time.March)
	b := NewMonth(2024, time.April)
	c := NewMonth(2023, time.December)
	if !a.Before(b) || b.Before(a) {
		t.Error("March should be before April")
	}
	if !c.Before(a) {
		t.Error("December 2023 should be before March 2024")
	}
	if a.Before(a) {
		t.Error("a month is not before itself")
	}
}

func TestDate(t *testing.T) {
	d := NewDate(2024, time.March, 31)
	if d.String() != "2024-03-31" {
		t.Errorf("String() = %q", d.String())
	}
	if d.YearMonth() != NewMonth(2024, time.March) {
		t.Errorf("YearMonth() = %s", d.YearMonth())
	}
	if got := NewDate(2024, time.February, 30); got != NewDate(2024, time.March, 1) {
		t.Errorf("NewDate normalised to %s, want 2024-03-01", got)
	}
	if !(Date{}).IsZero() || d.IsZero() {
		t.Error("IsZero mismatch")
	}
	if got := DateOf(time.Date(2024, 3, 31, 23, 59, 0, 0, time.UTC)); got != d {
		t.Errorf("DateOf = %s, want %s", got, d)
	}
}

func TestYearWindow(t *testing.T) {
	w := NewYearWindow(2026, 10, 9)
	if w.First != 2016 || w.Last != 2035 {
		t.Fatalf("window = %d..%d, want 2016..2035", w.First, w.Last)
	}
	if w.Len() != 20 {
		t.Errorf("Len() = %d, want 20", w.Len())
	}
	years := w.Years()
	if len(years) != 20 || years[0] != 2016 || years[19] != 2035 {
		t.Errorf("Years() = %v", years)
	}
	if w.Index(2026) != 10 {
		t.Errorf("Index(2026) = %d, want 10", w.Index(2026))
	}
	if w.Index(2036) != -1 || w.Contains(2015) {
		t.Error("years outside the window must not be contained")
	}
}
