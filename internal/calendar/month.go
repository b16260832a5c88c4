// Package calendar holds the date values and the month grid projection used by
// the date picker. Everything here is pure: values are immutable and every
// "mutation" returns a new value.
package calendar

import (
	"fmt"
	"time"

	"github.com/lancaster-music-hall/boxoffice/internal/dateutil"
)

// Month is a (year, month) pair. The zero value is not a valid month; use
// NewMonth or MonthOf.
type Month struct {
	year  int
	month time.Month
}

// NewMonth returns the month normalised through time.Date, so month 13 of
// 2024 is January 2025.
func NewMonth(year int, month time.Month) Month {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{year: t.Year(), month: t.Month()}
}

// MonthOf returns the month containing t.
func MonthOf(t time.Time) Month {
	return Month{year: t.Year(), month: t.Month()}
}

// Year returns the year component.
func (m Month) Year() int { return m.year }

// Month returns the month component.
func (m Month) Month() time.Month { return m.month }

// AddMonths returns the month n months away.
func (m Month) AddMonths(n int) Month {
	return NewMonth(m.year, m.month+time.Month(n))
}

// WithYear returns the same month in another year.
func (m Month) WithYear(year int) Month {
	return Month{year: year, month: m.month}
}

// Days returns the number of days in the month.
func (m Month) Days() int {
	return dateutil.DaysIn(m.year, m.month)
}

// FirstWeekday returns the weekday index (0=Sunday) of day 1.
func (m Month) FirstWeekday() int {
	return dateutil.FirstWeekday(m.year, m.month)
}

// Date returns the given day of this month.
func (m Month) Date(day int) Date {
	return NewDate(m.year, m.month, day)
}

// Before reports whether m is earlier than other.
func (m Month) Before(other Month) bool {
	if m.year != other.year {
		return m.year < other.year
	}
	return m.month < other.month
}

// String formats the month as "March 2024".
func (m Month) String() string {
	return fmt.Sprintf("%s %d", m.month, m.year)
}

// Date is a calendar day without a time or location.
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate returns the date normalised through time.Date.
func NewDate(year int, month time.Month, day int) Date {
	return DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

// Today returns the current local date.
func Today() Date {
	return DateOf(time.Now())
}

// Year returns the year component.
func (d Date) Year() int { return d.year }

// Month returns the month component.
func (d Date) Month() time.Month { return d.month }

// Day returns the day-of-month component.
func (d Date) Day() int { return d.day }

// YearMonth returns the month containing d.
func (d Date) YearMonth() Month {
	return Month{year: d.year, month: d.month}
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight of d in loc.
func (d Date) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// Format formats d with a time layout.
func (d Date) Format(layout string) string {
	return d.Time(time.UTC).Format(layout)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return d.Format(dateutil.DateLayout)
}
