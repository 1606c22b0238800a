package planner

import (
	"testing"

	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSingleSessionPlan(t *testing.T) {
	plan := BuildSingleSessionPlan("Legs", 60, "Advanced")

	assert.Equal(t, "Legs Session", plan.Title)
	assert.Equal(t, 60, plan.DurationMinutes)
	assert.Equal(t, "Advanced", plan.Difficulty)
	assert.Equal(t, "5-10 min light cardio, dynamic stretches", plan.Warmup)
	assert.Equal(t, "Stretch major muscle groups, 5 min", plan.Cooldown)

	require.Len(t, plan.Exercises, 6)
	for i, name := range ExerciseListFor(domain.FocusLegs) {
		assert.Equal(t, domain.ExercisePrescription{
			Name: name, Sets: "3", Reps: "8-12", Rest: "60s", Notes: "Controlled tempo",
		}, plan.Exercises[i])
	}
}

func TestBuildSingleSessionPlan_NormalizesFocus(t *testing.T) {
	tests := []struct {
		label string
		title string
	}{
		{"Full Weekly Plan", "Full Body Session"},
		{"Full Body Session", "Full Body Session"},
		{"", "Titan Session"},
		{"  ", "Titan Session"},
		{"Chest Day", "Chest Day"},
		{" Something else ", "Something else"},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			plan := BuildSingleSessionPlan(tt.label, 0, "Beginner")
			assert.Equal(t, tt.title, plan.Title)
			assert.Equal(t, 45, plan.DurationMinutes)
			assert.Equal(t, "Squat", plan.Exercises[0].Name)
		})
	}
}

func TestSessionTitle(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"legs", "Legs Session"},
		{"PUSH", "Push Session"},
		{"full body", "Full Body Session"},
		{"Chest Day", "Chest Day"},
		{"", "Titan Session"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, SessionTitle(tt.label))
		})
	}
}

func TestBuildFallbackPlan_SingleSession(t *testing.T) {
	plan := BuildFallbackPlan(domain.PlanRequest{
		Focus:   "Pull",
		Profile: &domain.UserProfile{Level: domain.LevelIntermediate},
	})

	assert.Equal(t, domain.PlanKindSingleSession, plan.Kind)
	assert.Equal(t, "Pull Session", plan.Session.Title)
	assert.Equal(t, "Intermediate", plan.Session.Difficulty)
	assert.Equal(t, 45, plan.Session.DurationMinutes)
	assert.Nil(t, plan.Weekly)
}

func TestBuildFallbackPlan_Weekly(t *testing.T) {
	plan := BuildFallbackPlan(domain.PlanRequest{
		Focus:           domain.FocusLabelFullWeeklyPlan,
		Split:           domain.SplitPushPullLegs,
		Frequency:       "5 days",
		DurationMinutes: 50,
		Level:           "Advanced",
	})

	assert.True(t, plan.IsWeekly())
	assert.Equal(t, "Titan Weekly Program", plan.Session.Title)
	assert.Equal(t, 50, plan.Session.DurationMinutes)
	assert.Equal(t, "Advanced", plan.Session.Difficulty)
	assert.Equal(t, []domain.Focus{P, Pu, L, R, P, Pu, R}, plan.Weekly.Foci())
	// weekly plans still carry the full body session
	assert.Equal(t, "Squat", plan.Session.Exercises[0].Name)
}

func TestBuildFallbackPlan_ClampsFrequency(t *testing.T) {
	tests := []struct {
		name      string
		frequency string
		training  int
	}{
		{"zero clamps to one", "0", 1},
		{"large clamps to seven", "12 days", 5},
		{"missing defaults to three", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := BuildFallbackPlan(domain.PlanRequest{
				Focus:     domain.FocusLabelFullWeeklyPlan,
				Split:     domain.SplitFullBody,
				Frequency: tt.frequency,
			})
			require.Len(t, plan.Weekly, 7)
			assert.Equal(t, tt.training, plan.Weekly.TrainingDays())
		})
	}
}

func TestBuildFallbackPlan_KeepsUnknownFocusLabel(t *testing.T) {
	plan := BuildFallbackPlan(domain.PlanRequest{Focus: "Chest Day"})

	assert.Equal(t, domain.PlanKindSingleSession, plan.Kind)
	assert.Equal(t, "Chest Day", plan.Session.Title)
	assert.Equal(t, ExerciseListFor(domain.FocusFullBody)[0], plan.Session.Exercises[0].Name)
}
