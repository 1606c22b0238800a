package planner

import (
	"strings"

	"github.com/mansoorceksport/titan/internal/domain"
)

// MaxSetsPerExercise caps how many set logs one exercise can seed
const MaxSetsPerExercise = 20

// SeedSetLogs creates an empty log per set of every exercise in plan. The set
// count is the leading integer of the exercise's sets field ("4 x 10" is 4).
func SeedSetLogs(plan domain.WorkoutPlan) []domain.SetLog {
	var logs []domain.SetLog
	for _, ex := range plan.Exercises {
		n := leadingInt(ex.Sets)
		if n > MaxSetsPerExercise {
			n = MaxSetsPerExercise
		}
		for i := 1; i <= n; i++ {
			logs = append(logs, domain.SetLog{ExerciseName: ex.Name, Set: i})
		}
	}
	return logs
}

// SessionComplete reports whether every set has reps logged. A session with
// no sets is not complete.
func SessionComplete(logs []domain.SetLog) bool {
	if len(logs) == 0 {
		return false
	}
	for _, l := range logs {
		if l.Reps <= 0 {
			return false
		}
	}
	return true
}

func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		n = n*10 + int(r-'0')
		if n > MaxSetsPerExercise {
			return n
		}
	}
	return n
}
