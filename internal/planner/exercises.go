package planner

import (
	"strings"

	"github.com/mansoorceksport/titan/internal/domain"
)

var canonicalExercises = map[domain.Focus][]string{
	domain.FocusPush:     {"Bench Press", "Incline DB Press", "Overhead Press", "Cable Fly", "Triceps Pushdown", "Skullcrusher"},
	domain.FocusPull:     {"Deadlift (moderate)", "Pull-ups", "Barbell Row", "Face Pull", "Hammer Curl", "Lat Pulldown"},
	domain.FocusLegs:     {"Back Squat", "Romanian Deadlift", "Leg Press", "Walking Lunge", "Leg Curl", "Standing Calf Raise"},
	domain.FocusUpper:    {"Bench Press", "Row", "Overhead Press", "Fly", "Pulldown", "Curl", "Triceps"},
	domain.FocusLower:    {"Squat", "RDL", "Leg Press", "Lunge", "Leg Curl", "Calf Raise"},
	domain.FocusFullBody: {"Squat", "Bench Press", "Row", "Hip Thrust", "Pulldown", "Core"},
	domain.FocusRest:     {domain.RecoveryExercise},
}

// TrainingFoci lists the foci that have a canonical exercise list, in display order
var TrainingFoci = []domain.Focus{
	domain.FocusPush,
	domain.FocusPull,
	domain.FocusLegs,
	domain.FocusUpper,
	domain.FocusLower,
	domain.FocusFullBody,
}

// ExerciseListFor returns a fresh copy of the canonical exercises for focus.
// Unknown foci get the Full Body list.
func ExerciseListFor(focus domain.Focus) []string {
	list, ok := canonicalExercises[focus]
	if !ok {
		list = canonicalExercises[domain.FocusFullBody]
	}
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// NormalizeFocus maps a client focus label to a Focus. Labels that do not
// name a single day, and anything unrecognised, become Full Body.
func NormalizeFocus(label string) domain.Focus {
	label = strings.TrimSpace(label)
	switch label {
	case "", domain.FocusLabelFullWeeklyPlan, domain.FocusLabelFullBodySession:
		return domain.FocusFullBody
	}
	for focus := range canonicalExercises {
		if strings.EqualFold(label, string(focus)) {
			return focus
		}
	}
	return domain.FocusFullBody
}
