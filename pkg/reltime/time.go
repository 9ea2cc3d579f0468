package reltime

import (
	"math"
	"time"
)

// Year/month arithmetic works on the wall calendar of t's location and clamps
// the day of month: Jan 31 + 1 month is the last day of February, not March 2.
// Sub-day units are absolute shifts of the instant.

const (
	maxShiftSeconds = math.MaxInt64 / int64(time.Second)

	// Years far outside anything the calendar tables are meant for.
	maxYear = math.MaxInt32
	minYear = math.MinInt32
)

func addUnit(t time.Time, u Unit, n uint32) (time.Time, error) {
	switch u {
	case UnitYear:
		return addMonths(t, int64(n)*monthsPerYear)
	case UnitMonth:
		return addMonths(t, int64(n))
	case UnitWeek:
		return addDays(t, int64(n)*daysPerWeek)
	case UnitDay:
		return addDays(t, int64(n))
	case UnitHour:
		return addSeconds(t, int64(n)*secondsPerHour)
	case UnitMinute:
		return addSeconds(t, int64(n)*secondsPerMinute)
	default:
		return addSeconds(t, int64(n))
	}
}

func subUnit(t time.Time, u Unit, n uint32) (time.Time, error) {
	switch u {
	case UnitYear:
		return addMonths(t, -int64(n)*monthsPerYear)
	case UnitMonth:
		return addMonths(t, -int64(n))
	case UnitWeek:
		return addDays(t, -int64(n)*daysPerWeek)
	case UnitDay:
		return addDays(t, -int64(n))
	case UnitHour:
		return addSeconds(t, -int64(n)*secondsPerHour)
	case UnitMinute:
		return addSeconds(t, -int64(n)*secondsPerMinute)
	default:
		return addSeconds(t, -int64(n))
	}
}

func addMonths(t time.Time, n int64) (time.Time, error) {
	year, month, day := t.Date()

	total := int64(year)*monthsPerYear + int64(month-1) + n
	newYear := total / monthsPerYear
	newMonth := total % monthsPerYear
	if newMonth < 0 {
		newMonth += monthsPerYear
		newYear--
	}
	if newYear > maxYear || newYear < minYear {
		return time.Time{}, ErrInvalidTime
	}

	m := time.Month(newMonth + 1)
	if limit := daysInMonth(int(newYear), m); day > limit {
		day = limit
	}

	hour, min, sec := t.Clock()
	return time.Date(int(newYear), m, day, hour, min, sec, t.Nanosecond(), t.Location()), nil
}

func addDays(t time.Time, n int64) (time.Time, error) {
	if n > maxYear || n < minYear {
		return time.Time{}, ErrInvalidTime
	}
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	// time.Date normalizes the out-of-range day, carrying into months and
	// years while the wall clock reading stays put.
	return time.Date(year, month, day+int(n), hour, min, sec, t.Nanosecond(), t.Location()), nil
}

func addSeconds(t time.Time, n int64) (time.Time, error) {
	if n > maxShiftSeconds || n < -maxShiftSeconds {
		return time.Time{}, ErrInvalidDelta
	}
	return t.Add(time.Duration(n) * time.Second), nil
}

func floorUnit(t time.Time, u Unit) (time.Time, error) {
	switch u {
	case UnitYear:
		utc := t.UTC()
		return time.Date(utc.Year(), time.January, 1, 0, 0, 0, 0, time.UTC).In(t.Location()), nil
	case UnitMonth:
		utc := t.UTC()
		return time.Date(utc.Year(), utc.Month(), 1, 0, 0, 0, 0, time.UTC).In(t.Location()), nil
	case UnitWeek:
		return floorWeek(t), nil
	case UnitDay:
		return t.Truncate(hoursPerDay * time.Hour), nil
	case UnitHour:
		return t.Truncate(time.Hour), nil
	case UnitMinute:
		return t.Truncate(time.Minute), nil
	default:
		return t.Truncate(time.Second), nil
	}
}

// floorWeek truncates to a multiple of seven days counted from the Unix
// epoch, which itself was a Thursday. Sub-day floors share the same epoch
// alignment, so "/w" is consistent with "/d" rather than with ISO weeks.
func floorWeek(t time.Time) time.Time {
	day := t.Truncate(hoursPerDay * time.Hour)
	since := day.Unix() / secondsPerDay
	shift := since % daysPerWeek
	if shift < 0 {
		shift += daysPerWeek
	}
	return day.Add(-time.Duration(shift) * hoursPerDay * time.Hour)
}
