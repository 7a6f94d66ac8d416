// Package experience derives "years of experience" from a starting year.
package experience

import "time"

// Clock returns the current time.
type Clock func() time.Time

// SystemClock reads the wall clock.
var SystemClock Clock = time.Now

// YearsSince returns currentYear - startYear. A zero startYear means the
// level is unknown and yields 0. Future start years are not clamped.
func YearsSince(startYear, currentYear int) int {
	if startYear == 0 {
		return 0
	}
	return currentYear - startYear
}

// Calculator evaluates YearsSince against a Clock.
type Calculator struct {
	clock Clock
}

// NewCalculator returns a Calculator reading the current year from clock.
// A nil clock uses SystemClock.
func NewCalculator(clock Clock) *Calculator {
	if clock == nil {
		clock = SystemClock
	}
	return &Calculator{clock: clock}
}

// Since returns the years elapsed between startYear and the clock's current year.
func (c *Calculator) Since(startYear int) int {
	clock := c.clock
	if clock == nil {
		clock = SystemClock
	}
	return YearsSince(startYear, clock().Year())
}

// FixedYear returns a Clock pinned to January 1st of year.
func FixedYear(year int) Clock {
	t := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}
