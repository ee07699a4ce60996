package datum

import "time"

// DateRange pairs an optional start and end. Nothing orders or validates them.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// NewDateRange creates a DateRange; either end may be nil
func NewDateRange(start, end *time.Time) DateRange {
	return DateRange{Start: start, End: end}
}
