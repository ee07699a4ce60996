package datum

import "time"

// Clock provides the current point in time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant
type FixedClock struct {
	At time.Time
}

// NewFixedClock creates a clock pinned to at
func NewFixedClock(at time.Time) FixedClock {
	return FixedClock{At: at}
}

// Now returns the pinned instant
func (c FixedClock) Now() time.Time {
	return c.At
}
