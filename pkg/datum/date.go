package datum

import (
	"fmt"
	"time"

	"cloudeng.io/datetime"
)

// Date is a calendar date without a time of day
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date portion of t
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Valid reports whether the date exists in the Gregorian calendar
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= daysIn(d.Month, d.Year)
}

// IsLeapYear reports whether the date's year has a February 29
func (d Date) IsLeapYear() bool {
	return datetime.IsLeap(d.Year)
}

// String formats the date as YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// daysIn returns the number of days in month m of year; m must be 1-12
func daysIn(m time.Month, year int) int {
	return datetime.DaysInMonth(year, datetime.Month(m))
}

// addMonths shifts t by n calendar months. A day of month that does not exist
// in the target month is clamped to its last day instead of overflowing.
func addMonths(t time.Time, n int) time.Time {
	year, month, day := t.Date()

	total := int(month) - 1 + n
	year += total / 12
	idx := total % 12
	if idx < 0 {
		idx += 12
		year--
	}
	target := time.Month(idx + 1)

	if last := daysIn(target, year); day > last {
		day = last
	}

	return time.Date(year, target, day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
