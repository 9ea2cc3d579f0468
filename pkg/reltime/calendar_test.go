package reltime

import (
	"testing"
	"time"
)

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2000, true},
		{1900, false},
		{2024, true},
		{2023, false},
		{2100, false},
		{2400, true},
		{0, true},
	}
	for _, tt := range tests {
		if got := isLeapYear(tt.year); got != tt.want {
			t.Errorf("isLeapYear(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		year  int
		month time.Month
		want  int
	}{
		{2025, time.January, 31},
		{2025, time.February, 28},
		{2024, time.February, 29},
		{2025, time.April, 30},
		{2025, time.December, 31},
	}
	for _, tt := range tests {
		if got := daysInMonth(tt.year, tt.month); got != tt.want {
			t.Errorf("daysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
		}
	}

	// Every year adds up to a full calendar.
	for _, tt := range []struct {
		year int
		want int
	}{{2024, 366}, {2025, 365}} {
		total := 0
		for m := time.January; m <= time.December; m++ {
			total += daysInMonth(tt.year, m)
		}
		if total != tt.want {
			t.Errorf("year %d has %d days, want %d", tt.year, total, tt.want)
		}
	}
}
