package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/planner"
	"github.com/mansoorceksport/titan/internal/repository"
	"github.com/mansoorceksport/titan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkoutService(t *testing.T) (*WorkoutService, *fakeWorkoutRepo, *fakeSessionRepo, *fakeFileRepo) {
	t.Helper()
	client, _ := testutil.SetupTestRedis(t)
	workouts := &fakeWorkoutRepo{}
	sessions := &fakeSessionRepo{}
	files := &fakeFileRepo{}
	return NewWorkoutService(workouts, sessions, files, repository.NewRedisCacheRepository(client)), workouts, sessions, files
}

func legsPlan() domain.WorkoutPlan {
	return domain.WorkoutPlan{SessionPlan: planner.BuildSingleSessionPlan("Legs", 40, "Beginner")}
}

func TestWorkoutService_SaveAndList(t *testing.T) {
	svc, _, _, _ := newTestWorkoutService(t)
	ctx := context.Background()

	saved, err := svc.Save(ctx, "p1", legsPlan())
	require.NoError(t, err)
	assert.Len(t, saved.ID, 26, "ids are ULIDs")
	assert.Equal(t, "Legs Session", saved.Title)
	assert.Equal(t, 40, saved.DurationMinutes)

	untitled := legsPlan()
	untitled.Title = "  "
	second, err := svc.Save(ctx, "p1", untitled)
	require.NoError(t, err)
	assert.Equal(t, "Titan Session", second.Title)

	_, err = svc.Save(ctx, "p1", domain.WorkoutPlan{})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	list, err := svc.List(ctx, "p1")
	require.NoError(t, err)
	assert.Len(t, list, 2)

	others, err := svc.List(ctx, "p2")
	require.NoError(t, err)
	assert.Empty(t, others)
}

func TestWorkoutService_ListCapsAtFifty(t *testing.T) {
	svc, workouts, _, _ := newTestWorkoutService(t)
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 60; i++ {
		workouts.workouts = append(workouts.workouts, &domain.WorkoutRecord{
			ID: generateULID(), ProfileID: "p1", CreatedAt: base.Add(time.Duration(i) * time.Second),
		})
	}

	list, err := svc.List(context.Background(), "p1")
	require.NoError(t, err)
	require.Len(t, list, RecentWorkoutLimit)
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))
}

func TestWorkoutService_Update(t *testing.T) {
	svc, _, _, _ := newTestWorkoutService(t)
	ctx := context.Background()
	saved, err := svc.Save(ctx, "p1", legsPlan())
	require.NoError(t, err)

	title := "Leg Day Deluxe"
	updated, err := svc.Update(ctx, "p1", saved.ID, WorkoutUpdate{
		Title:     &title,
		Exercises: []domain.ExercisePrescription{{Name: "Hack Squat", Sets: "4"}},
	})
	require.NoError(t, err)
	assert.Equal(t, title, updated.Title)
	assert.Equal(t, title, updated.PlanData.Title)
	require.Len(t, updated.PlanData.Exercises, 1)

	empty := " "
	_, err = svc.Update(ctx, "p1", saved.ID, WorkoutUpdate{Title: &empty})
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	_, err = svc.Update(ctx, "p2", saved.ID, WorkoutUpdate{Title: &title})
	assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestWorkoutService_UpdateDurationAndSchedule(t *testing.T) {
	svc, _, _, _ := newTestWorkoutService(t)
	ctx := context.Background()

	schedule, err := planner.BuildWeeklySchedule(domain.SplitPushPullLegs, 3)
	require.NoError(t, err)
	weekly := legsPlan()
	weekly.WeeklySchedule = schedule
	saved, err := svc.Save(ctx, "p1", weekly)
	require.NoError(t, err)

	upperLower, err := planner.BuildWeeklySchedule(domain.SplitUpperLower, 4)
	require.NoError(t, err)
	duration := 60

	updated, err := svc.Update(ctx, "p1", saved.ID, WorkoutUpdate{DurationMinutes: &duration, WeeklySchedule: upperLower})
	require.NoError(t, err)
	assert.Equal(t, 60, updated.DurationMinutes)
	assert.Equal(t, 60, updated.PlanData.DurationMinutes)
	assert.Equal(t, upperLower.Foci(), updated.PlanData.WeeklySchedule.Foci())

	stored, err := svc.Get(ctx, "p1", saved.ID)
	require.NoError(t, err)
	assert.Equal(t, 60, stored.DurationMinutes)
	assert.Equal(t, domain.PlanKindWeekly, domain.PlanFromWorkout(stored.PlanData).Kind)

	tests := []struct {
		name   string
		update WorkoutUpdate
	}{
		{"zero duration", WorkoutUpdate{DurationMinutes: new(int)}},
		{"short schedule", WorkoutUpdate{WeeklySchedule: upperLower[:5]}},
		{"nothing left to train", WorkoutUpdate{Exercises: []domain.ExercisePrescription{}, WeeklySchedule: domain.WeeklySchedule{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Update(ctx, "p1", saved.ID, tt.update)
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}

	t.Run("empty schedule makes a single session", func(t *testing.T) {
		single, err := svc.Update(ctx, "p1", saved.ID, WorkoutUpdate{WeeklySchedule: domain.WeeklySchedule{}})
		require.NoError(t, err)
		assert.Nil(t, single.PlanData.WeeklySchedule)
		assert.Equal(t, domain.PlanKindSingleSession, domain.PlanFromWorkout(single.PlanData).Kind)
	})
}

func TestWorkoutService_Export(t *testing.T) {
	svc, _, _, files := newTestWorkoutService(t)
	ctx := context.Background()
	saved, err := svc.Save(ctx, "p1", legsPlan())
	require.NoError(t, err)

	url, err := svc.Export(ctx, "p1", saved.ID)
	require.NoError(t, err)
	assert.Contains(t, url, "plans/p1/"+saved.ID+".json")

	var exported domain.Plan
	require.NoError(t, json.Unmarshal(files.uploads["plans/p1/"+saved.ID+".json"], &exported))
	assert.Equal(t, domain.PlanKindSingleSession, exported.Kind)
	assert.Equal(t, "Legs Session", exported.Session.Title)

	disabled := NewWorkoutService(&fakeWorkoutRepo{}, &fakeSessionRepo{}, nil, nil)
	_, err = disabled.Export(ctx, "p1", saved.ID)
	assert.ErrorIs(t, err, ErrExportDisabled)
}

func TestWorkoutService_Sessions(t *testing.T) {
	svc, _, sessions, _ := newTestWorkoutService(t)
	ctx := context.Background()
	saved, err := svc.Save(ctx, "p1", legsPlan())
	require.NoError(t, err)

	t.Run("start requires a source", func(t *testing.T) {
		_, err := svc.StartSession(ctx, "p1", "", nil)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("start from saved workout seeds logs", func(t *testing.T) {
		active, err := svc.StartSession(ctx, "p1", saved.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, active.WorkoutID)
		assert.Len(t, active.Logs, 6*3)
		for _, l := range active.Logs {
			assert.Zero(t, l.Reps)
			assert.Zero(t, l.Weight)
		}
	})

	t.Run("start from ad-hoc plan", func(t *testing.T) {
		plan := legsPlan()
		plan.Exercises = plan.Exercises[:1]
		active, err := svc.StartSession(ctx, "p1", "", &plan)
		require.NoError(t, err)
		assert.Len(t, active.Logs, 3)
	})

	t.Run("incomplete session is rejected", func(t *testing.T) {
		active, err := svc.StartSession(ctx, "p1", saved.ID, nil)
		require.NoError(t, err)
		active.Logs[0].Reps = 8

		_, err = svc.FinishSession(ctx, "p1", saved.ID, FinishSessionInput{Logs: active.Logs})
		assert.ErrorIs(t, err, domain.ErrSessionIncomplete)
		assert.Empty(t, sessions.sessions)
	})

	t.Run("complete session is stored", func(t *testing.T) {
		active, err := svc.StartSession(ctx, "p1", saved.ID, nil)
		require.NoError(t, err)
		for i := range active.Logs {
			active.Logs[i].Reps = 10
			active.Logs[i].Weight = 40
		}

		rec, err := svc.FinishSession(ctx, "p1", saved.ID, FinishSessionInput{Logs: active.Logs, StartedAt: active.StartedAt})
		require.NoError(t, err)
		assert.Equal(t, saved.Title, rec.Title)
		assert.False(t, rec.FinishedAt.Before(rec.StartedAt))

		list, err := svc.ListSessions(ctx, "p1", saved.ID)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, rec.ID, list[0].ID)
	})

	t.Run("session from an unsaved plan is stored", func(t *testing.T) {
		plan := legsPlan()
		plan.Title = "Garage Legs"
		active, err := svc.StartSession(ctx, "p1", "", &plan)
		require.NoError(t, err)
		require.Len(t, active.Logs, 18)
		for i := range active.Logs {
			active.Logs[i].Reps = 10
		}

		before := len(sessions.sessions)
		rec, err := svc.FinishSession(ctx, "p1", active.WorkoutID, FinishSessionInput{
			Plan:      &active.Plan,
			Logs:      active.Logs,
			StartedAt: active.StartedAt,
		})
		require.NoError(t, err)
		assert.Empty(t, rec.WorkoutID)
		assert.Equal(t, "Garage Legs", rec.Title)
		assert.Equal(t, 40, rec.DurationMinutes)
		assert.Equal(t, "Beginner", rec.Difficulty)
		assert.Len(t, sessions.sessions, before+1)

		dates, err := sessions.FinishedSince(ctx, "p1", time.Now().Add(-time.Minute))
		require.NoError(t, err)
		assert.NotEmpty(t, dates)
	})

	t.Run("unsaved session needs its plan", func(t *testing.T) {
		logs := []domain.SetLog{{ExerciseName: "Squat", Set: 1, Reps: 5}}
		_, err := svc.FinishSession(ctx, "p1", "", FinishSessionInput{Logs: logs})
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)

		untitled := domain.WorkoutPlan{}
		rec, err := svc.FinishSession(ctx, "p1", "", FinishSessionInput{Plan: &untitled, Logs: logs})
		require.NoError(t, err)
		assert.Equal(t, planner.DefaultSessionTitle, rec.Title)
	})

	t.Run("sessions of another profile's workout", func(t *testing.T) {
		_, err := svc.ListSessions(ctx, "p2", saved.ID)
		assert.ErrorIs(t, err, domain.ErrWorkoutNotFound)
	})
}

func TestWorkoutService_SaveInvalidatesStats(t *testing.T) {
	client, mr := testutil.SetupTestRedis(t)
	svc := NewWorkoutService(&fakeWorkoutRepo{}, &fakeSessionRepo{}, nil, repository.NewRedisCacheRepository(client))

	key := StatsKey("p1", time.Now().UTC())
	require.NoError(t, mr.Set(key, `{"workouts_completed":1}`))

	_, err := svc.Save(context.Background(), "p1", legsPlan())
	require.NoError(t, err)
	assert.False(t, mr.Exists(key))
}

func TestWorkoutService_InvalidationStaysWithinProfile(t *testing.T) {
	client, mr := testutil.SetupTestRedis(t)
	svc := NewWorkoutService(&fakeWorkoutRepo{}, &fakeSessionRepo{}, nil, repository.NewRedisCacheRepository(client))

	now := time.Now().UTC()
	victim := StatsKey("p1", now)
	own := StatsKey("*", now)
	require.NoError(t, mr.Set(victim, `{"workouts_completed":1}`))
	require.NoError(t, mr.Set(own, `{"workouts_completed":1}`))

	_, err := svc.Save(context.Background(), "*", legsPlan())
	require.NoError(t, err)
	assert.True(t, mr.Exists(victim))
	assert.False(t, mr.Exists(own))
}
