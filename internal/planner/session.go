package planner

import (
	"strings"

	"github.com/mansoorceksport/titan/internal/domain"
)

const (
	DefaultDurationMinutes = 45

	defaultSets  = "3"
	defaultReps  = "8-12"
	defaultRest  = "60s"
	defaultNotes = "Controlled tempo"

	DefaultWarmup   = "5-10 min light cardio, dynamic stretches"
	DefaultCooldown = "Stretch major muscle groups, 5 min"

	WeeklyProgramTitle  = "Titan Weekly Program"
	DefaultSessionTitle = "Titan Session"
)

// Prescribe gives every exercise the default prescription
func Prescribe(names []string) []domain.ExercisePrescription {
	out := make([]domain.ExercisePrescription, len(names))
	for i, n := range names {
		out[i] = domain.ExercisePrescription{
			Name:  n,
			Sets:  defaultSets,
			Reps:  defaultReps,
			Rest:  defaultRest,
			Notes: defaultNotes,
		}
	}
	return out
}

// SessionTitle names a session after its focus label. Recognised foci read
// "<Focus> Session"; any other label is kept as the client wrote it.
func SessionTitle(label string) string {
	label = strings.TrimSpace(label)
	switch label {
	case "":
		return DefaultSessionTitle
	case domain.FocusLabelFullWeeklyPlan, domain.FocusLabelFullBodySession:
		return string(domain.FocusFullBody) + " Session"
	}
	for focus := range canonicalExercises {
		if strings.EqualFold(label, string(focus)) {
			return string(focus) + " Session"
		}
	}
	return label
}

// BuildSingleSessionPlan builds a session from the canonical list of the
// normalised focus. A non-positive duration becomes 45 minutes.
func BuildSingleSessionPlan(focus string, durationMinutes int, difficulty string) domain.SessionPlan {
	nf := NormalizeFocus(focus)
	if durationMinutes <= 0 {
		durationMinutes = DefaultDurationMinutes
	}
	return domain.SessionPlan{
		Title:           SessionTitle(focus),
		DurationMinutes: durationMinutes,
		Difficulty:      difficulty,
		Exercises:       Prescribe(ExerciseListFor(nf)),
		Warmup:          DefaultWarmup,
		Cooldown:        DefaultCooldown,
	}
}

// BuildFallbackPlan is the deterministic plan served when no generator is
// available or it fails.
func BuildFallbackPlan(req domain.PlanRequest) domain.Plan {
	session := BuildSingleSessionPlan(req.Focus, req.DurationMinutes, req.EffectiveLevel())
	if !req.IsWeekly() {
		return domain.Plan{Kind: domain.PlanKindSingleSession, Session: session}
	}

	session.Title = WeeklyProgramTitle
	return domain.Plan{
		Kind:    domain.PlanKindWeekly,
		Session: session,
		Weekly:  FallbackSchedule(req),
	}
}

// FallbackSchedule builds the weekly schedule for req with its frequency
// clamped into range, so it never fails.
func FallbackSchedule(req domain.PlanRequest) domain.WeeklySchedule {
	freq := clampFrequency(ParseFrequency(req.Frequency))
	schedule, _ := BuildWeeklySchedule(ParseSplitStrategy(string(req.Split)), freq)
	return schedule
}
