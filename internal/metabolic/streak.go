package metabolic

import (
	"time"
)

// DefaultStreakWindow is how many days back a streak is counted
const DefaultStreakWindow = 30

type calendarDay struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time, loc *time.Location) calendarDay {
	y, m, d := t.In(loc).Date()
	return calendarDay{y, m, d}
}

// ComputeStreak counts consecutive training days ending today. Dates are
// compared as calendar days in today's location; a missing today gives 0.
func ComputeStreak(trainingDates []time.Time, today time.Time, windowDays int) int {
	if windowDays <= 0 {
		windowDays = DefaultStreakWindow
	}
	loc := today.Location()

	days := make(map[calendarDay]struct{}, len(trainingDates))
	for _, t := range trainingDates {
		days[dayOf(t, loc)] = struct{}{}
	}

	y, m, d := today.Date()
	streak := 0
	for i := 0; i < windowDays; i++ {
		// noon so DST transitions never land on the previous day
		day := time.Date(y, m, d-i, 12, 0, 0, 0, loc)
		if _, ok := days[dayOf(day, loc)]; !ok {
			break
		}
		streak++
	}
	return streak
}
