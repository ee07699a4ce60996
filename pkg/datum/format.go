package datum

import (
	"fmt"
	"time"
)

// Layouts consumed and produced by Datum
const (
	ISODateLayout      = "2006-01-02"
	ISOLongLayout      = "2006-01-02T15:04:05"
	ISOFullLayout      = "2006-01-02T15:04:05.000000Z07:00"
	ShortTimeLayout    = "15:04"
	LongTimeLayout     = "15:04:05"
	DateTimeLayout     = "2006-01-02 15:04:05"
	LongDateTimeLayout = "2006-01-02 15:04"
)

// FromISODateString parses YYYY-MM-DD. The time of day is 00:00:00 UTC.
func (d *Datum) FromISODateString(s string) (time.Time, error) {
	t, err := time.Parse(ISODateLayout, s)
	if err != nil {
		return d.value, fmt.Errorf("%q is not YYYY-MM-DD: %w", s, ErrParse)
	}
	d.value = t
	return d.value, nil
}

// FromISOLongDate parses YYYY-MM-DDTHH:mm:ss (exactly 19 characters) as UTC
func (d *Datum) FromISOLongDate(s string) (time.Time, error) {
	if len(s) != len(ISOLongLayout) {
		return d.value, fmt.Errorf("%q must be %d characters: %w", s, len(ISOLongLayout), ErrParse)
	}
	t, err := time.Parse(ISOLongLayout, s)
	if err != nil {
		return d.value, fmt.Errorf("%q is not YYYY-MM-DDTHH:mm:ss: %w", s, ErrParse)
	}
	d.value = t
	return d.value, nil
}

// ToISODateString formats the value as YYYY-MM-DD
func (d *Datum) ToISODateString() string {
	return d.value.Format(ISODateLayout)
}

// GetISODateString is an alias of ToISODateString
func (d *Datum) GetISODateString() string {
	return d.ToISODateString()
}

// ToISOString formats the value as full ISO 8601 with microseconds,
// e.g. 2020-06-01T10:30:00.000000Z
func (d *Datum) ToISOString() string {
	return d.value.Format(ISOFullLayout)
}

// GetISOString is an alias of ToISOString
func (d *Datum) GetISOString() string {
	return d.ToISOString()
}

// ToShortTimeString formats the time of day as HH:MM
func (d *Datum) ToShortTimeString() string {
	return d.value.Format(ShortTimeLayout)
}

// ToLongTimeString formats the time of day as HH:MM:SS
func (d *Datum) ToLongTimeString() string {
	return d.value.Format(LongTimeLayout)
}

// ToDateTimeString formats the value as YYYY-MM-DD HH:MM:SS
func (d *Datum) ToDateTimeString() string {
	return d.value.Format(DateTimeLayout)
}

// ToLongDateTimeString formats the value as YYYY-MM-DD HH:MM.
// Seconds are not included.
func (d *Datum) ToLongDateTimeString() string {
	return d.value.Format(LongDateTimeLayout)
}
