package datum

import (
	"time"

	"github.com/jinzhu/now"
)

// nowConfig starts weeks on Monday
var nowConfig = &now.Config{WeekStartDay: time.Monday}

// StartOfWeek moves to Monday 00:00:00 of the current week
func (d *Datum) StartOfWeek() time.Time {
	d.value = nowConfig.With(d.value).BeginningOfWeek()
	return d.value
}

// EndOfWeek moves to Sunday 23:59:59 of the current week
func (d *Datum) EndOfWeek() time.Time {
	d.StartOfWeek()
	d.AddDays(6)
	return d.EndOfDay()
}

// ISOWeek returns the ISO year and week number
func (d *Datum) ISOWeek() (year int, week int) {
	year, week = d.value.ISOWeek()
	return
}

// IsWeekday returns true if the value is Monday-Friday
func (d *Datum) IsWeekday() bool {
	return isoWeekday(d.value) <= 5
}

// IsWeekend returns true if the value is Saturday or Sunday
func (d *Datum) IsWeekend() bool {
	return !d.IsWeekday()
}

// IsSameDay returns true if both values fall on the same calendar date
func (d *Datum) IsSameDay(other *Datum) bool {
	return d.Date() == other.Date()
}
