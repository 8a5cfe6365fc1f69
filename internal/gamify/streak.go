package gamify

import "time"

// NextStreak returns the day-streak after activity on today, given the
// current streak and the last activity date. Dates compare by calendar day.
//
// A second award on the same day leaves the streak unchanged, as does a
// last activity date in the future.
func NextStreak(current int, last *time.Time, today time.Time) int {
	if last == nil {
		return 1
	}
	switch diff := DaysBetween(*last, today); {
	case diff == 1:
		return current + 1
	case diff > 1:
		return 1
	default:
		return current
	}
}

// DaysBetween returns the number of calendar days from a to b, reading
// each in its own location.
func DaysBetween(a, b time.Time) int {
	return int(civilDate(b).Sub(civilDate(a)).Hours() / 24)
}

func civilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
