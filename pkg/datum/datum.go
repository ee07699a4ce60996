// Package datum wraps a time.Time with calendar arithmetic, day and month
// boundaries, ISO parsing and formatting.
//
// Every mutating method updates the receiver and returns the new value. A
// method that fails leaves the value untouched.
package datum

import (
	"fmt"
	"time"
)

// Datum encapsulates a point in time and the operations on top of it.
// The zero value holds the zero time and reads the system clock.
type Datum struct {
	value time.Time
	clock Clock
}

// New creates a Datum set to the current moment
func New() *Datum {
	return NewWithClock(SystemClock{})
}

// NewWithClock creates a Datum set to clock.Now(). The clock is kept for
// Today and Yesterday.
func NewWithClock(clock Clock) *Datum {
	return &Datum{value: clock.Now(), clock: clock}
}

// NewFromTime creates a Datum holding t
func NewFromTime(t time.Time) *Datum {
	return &Datum{value: t, clock: SystemClock{}}
}

// Parse creates a Datum from a YYYY-MM-DD string
func Parse(s string) (*Datum, error) {
	d := New()
	if _, err := d.FromISODateString(s); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *Datum) now() time.Time {
	if d.clock == nil {
		return time.Now()
	}
	return d.clock.Now()
}

// Value returns the current value
func (d *Datum) Value() time.Time {
	return d.value
}

// SetValue replaces the current value
func (d *Datum) SetValue(t time.Time) {
	d.value = t
}

// Date returns the date portion of the value
func (d *Datum) Date() Date {
	return NewDate(d.value)
}

// Clone creates an independent copy
func (d *Datum) Clone() *Datum {
	return &Datum{value: d.value, clock: d.clock}
}

// Equal reports whether both hold the same instant
func (d *Datum) Equal(other *Datum) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.value.Equal(other.value)
}

// AddDays shifts the value by n calendar days
func (d *Datum) AddDays(n int) time.Time {
	d.value = d.value.AddDate(0, 0, n)
	return d.value
}

// SubtractDays shifts the value back by n calendar days
func (d *Datum) SubtractDays(n int) time.Time {
	return d.AddDays(-n)
}

// AddMonths shifts the value by n calendar months, clamping to the last day
// of the target month (Jan 31 + 1 month = Feb 28 or 29)
func (d *Datum) AddMonths(n int) time.Time {
	d.value = addMonths(d.value, n)
	return d.value
}

// SubtractMonths shifts the value back by n calendar months
func (d *Datum) SubtractMonths(n int) time.Time {
	return d.AddMonths(-n)
}

// SubtractWeeks subtracts n*7*24 hours
func (d *Datum) SubtractWeeks(n int) time.Time {
	d.value = d.value.Add(-time.Duration(n) * 7 * 24 * time.Hour)
	return d.value
}

// StartOfDay sets the time of day to 00:00:00
func (d *Datum) StartOfDay() time.Time {
	d.value = nowConfig.With(d.value).BeginningOfDay()
	return d.value
}

// EndOfDay sets the time of day to 23:59:59
func (d *Datum) EndOfDay() time.Time {
	y, m, day := d.value.Date()
	d.value = time.Date(y, m, day, 23, 59, 59, 0, d.value.Location())
	return d.value
}

// EndOfMonth moves to the last day of the month, keeping the time of day
func (d *Datum) EndOfMonth() time.Time {
	// next month, its first day, one day back
	result := addMonths(d.value, 1)
	result = time.Date(result.Year(), result.Month(), 1,
		result.Hour(), result.Minute(), result.Second(), result.Nanosecond(), result.Location())
	d.value = result.AddDate(0, 0, -1)
	return d.value
}

// IsEndOfMonth reports whether the value falls on the last day of its month
func (d *Datum) IsEndOfMonth() bool {
	end := d.Clone()
	end.EndOfMonth()
	return end.Date() == d.Date()
}

// Today sets the value to the current date at 00:00:00
func (d *Datum) Today() time.Time {
	d.value = d.now()
	return d.StartOfDay()
}

// Yesterday sets the value to exactly 24 hours before now.
// The time of day is not reset.
func (d *Datum) Yesterday() time.Time {
	d.value = d.now().Add(-24 * time.Hour)
	return d.value
}

// SetDay replaces the day of month
func (d *Datum) SetDay(day int) (time.Time, error) {
	y, m, _ := d.value.Date()
	if !(Date{Year: y, Month: m, Day: day}).Valid() {
		return d.value, fmt.Errorf("day %d in %04d-%02d: %w", day, y, m, ErrInvalidDate)
	}
	v := d.value
	d.value = time.Date(y, m, day, v.Hour(), v.Minute(), v.Second(), v.Nanosecond(), v.Location())
	return d.value, nil
}

// FromDate sets the value to the given date at 00:00:00 in the current
// value's location
func (d *Datum) FromDate(date Date) (time.Time, error) {
	if !date.Valid() {
		return d.value, fmt.Errorf("%s: %w", date, ErrInvalidDate)
	}
	d.value = time.Date(date.Year, date.Month, date.Day, 0, 0, 0, 0, d.value.Location())
	return d.value, nil
}

// FromDateTime sets the value. The zero time is not a point in time.
func (d *Datum) FromDateTime(t time.Time) (time.Time, error) {
	if t.IsZero() {
		return d.value, fmt.Errorf("zero time is not a point in time: %w", ErrTypeMismatch)
	}
	d.value = t
	return d.value, nil
}

// Day returns the day of month
func (d *Datum) Day() int {
	return d.value.Day()
}

// Month returns the month number (1-12)
func (d *Datum) Month() int {
	return int(d.value.Month())
}

// Year returns the year
func (d *Datum) Year() int {
	return d.value.Year()
}

var dayNames = [...]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// isoWeekday returns 1 for Monday through 7 for Sunday
func isoWeekday(t time.Time) int {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return weekday
}

// DayName returns the full weekday name, e.g. "Monday"
func (d *Datum) DayName() string {
	return dayNames[isoWeekday(d.value)-1]
}

// String renders the value as YYYY-MM-DD HH:MM:SS
func (d *Datum) String() string {
	return d.ToDateTimeString()
}
