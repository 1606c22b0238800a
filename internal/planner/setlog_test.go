package planner

import (
	"testing"

	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSetLogs(t *testing.T) {
	plan := domain.WorkoutPlan{SessionPlan: domain.SessionPlan{
		Exercises: []domain.ExercisePrescription{
			{Name: "Squat", Sets: "2"},
			{Name: "Row", Sets: "3 x 10"},
			{Name: "Plank", Sets: "AMRAP"},
			{Name: "Curl", Sets: ""},
		},
	}}

	logs := SeedSetLogs(plan)

	require.Len(t, logs, 5)
	assert.Equal(t, domain.SetLog{ExerciseName: "Squat", Set: 1}, logs[0])
	assert.Equal(t, domain.SetLog{ExerciseName: "Squat", Set: 2}, logs[1])
	assert.Equal(t, domain.SetLog{ExerciseName: "Row", Set: 3}, logs[4])
}

func TestSeedSetLogs_CapsSets(t *testing.T) {
	plan := domain.WorkoutPlan{SessionPlan: domain.SessionPlan{
		Exercises: []domain.ExercisePrescription{{Name: "Burpee", Sets: "100000"}},
	}}
	assert.Len(t, SeedSetLogs(plan), MaxSetsPerExercise)
}

func TestSessionComplete(t *testing.T) {
	assert.False(t, SessionComplete(nil))
	assert.False(t, SessionComplete([]domain.SetLog{{Set: 1, Reps: 10}, {Set: 2}}))
	assert.True(t, SessionComplete([]domain.SetLog{{Set: 1, Reps: 10}, {Set: 2, Reps: 8}}))
}
