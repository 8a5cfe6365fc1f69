package gamify

import "time"

// Clock supplies the current calendar date.
type Clock interface {
	Today() time.Time
}

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	Loc *time.Location
}

// Today returns midnight of the current date in the clock's location.
func (c SystemClock) Today() time.Time {
	loc := c.Loc
	if loc == nil {
		loc = time.Local
	}
	y, m, d := time.Now().In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// FixedClock always reports the same date.
type FixedClock time.Time

// Today returns the fixed date.
func (c FixedClock) Today() time.Time { return time.Time(c) }
