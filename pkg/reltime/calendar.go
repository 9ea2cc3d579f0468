package reltime

import "time"

const (
	monthsPerYear    = 12
	daysPerWeek      = 7
	hoursPerDay      = 24
	minutesPerHour   = 60
	secondsPerMinute = 60
	secondsPerHour   = secondsPerMinute * minutesPerHour
	secondsPerDay    = secondsPerHour * hoursPerDay
)

var daysPerMonth = [...]int{
	time.January:   31,
	time.February:  28,
	time.March:     31,
	time.April:     30,
	time.May:       31,
	time.June:      30,
	time.July:      31,
	time.August:    31,
	time.September: 30,
	time.October:   31,
	time.November:  30,
	time.December:  31,
}

// isLeapYear reports whether year has a February 29th: divisible by 4, and by
// 400 whenever divisible by 100.
func isLeapYear(year int) bool {
	return year%4 == 0 && (year%400 == 0 || year%100 != 0)
}

func daysInMonth(year int, m time.Month) int {
	if m == time.February && isLeapYear(year) {
		return 29
	}
	return daysPerMonth[m]
}
