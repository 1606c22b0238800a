package metabolic

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func daysAgo(today time.Time, n ...int) []time.Time {
	out := make([]time.Time, len(n))
	for i, d := range n {
		out[i] = today.AddDate(0, 0, -d)
	}
	return out
}

func TestComputeStreak(t *testing.T) {
	today := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		dates    []time.Time
		window   int
		expected int
	}{
		{"three consecutive days", daysAgo(today, 0, 1, 2), 30, 3},
		{"today missing", daysAgo(today, 1), 30, 0},
		{"no dates", nil, 30, 0},
		{"gap stops the streak", daysAgo(today, 0, 1, 3, 4), 30, 2},
		{"duplicates count once", daysAgo(today, 0, 0, 0, 1), 30, 2},
		{"future dates are ignored", daysAgo(today, -1, 0), 30, 1},
		{"window caps the streak", daysAgo(today, 0, 1, 2, 3, 4), 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ComputeStreak(tt.dates, today, tt.window))
		})
	}
}

func TestComputeStreak_DefaultWindow(t *testing.T) {
	today := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	var dates []time.Time
	for i := 0; i < 45; i++ {
		dates = append(dates, today.AddDate(0, 0, -i))
	}
	assert.Equal(t, 30, ComputeStreak(dates, today, 0))
}

func TestComputeStreak_ComparesCalendarDaysInTodaysZone(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	today := time.Date(2026, 10, 19, 10, 0, 0, 0, est)

	// 02:00 UTC on the 20th is 21:00 on the 19th in EST
	late := time.Date(2026, 10, 20, 2, 0, 0, 0, time.UTC)
	// 23:59 the previous evening, different time of day
	yesterday := time.Date(2026, 10, 18, 23, 59, 0, 0, est)

	assert.Equal(t, 2, ComputeStreak([]time.Time{late, yesterday}, today, 30))
}
