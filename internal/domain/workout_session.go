package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrSessionNotFound   = errors.New("workout session not found")
	ErrSessionIncomplete = errors.New("every set needs reps before finishing")
)

type SetLog struct {
	ExerciseName string  `json:"exercise_name" bson:"exercise_name"`
	Set          int     `json:"set" bson:"set"` // 1-based
	Reps         int     `json:"reps" bson:"reps"`
	Weight       float64 `json:"weight" bson:"weight"`
}

// ActiveSession is a session in progress. It is not persisted until finished.
type ActiveSession struct {
	WorkoutID string      `json:"workout_id,omitempty"`
	Plan      WorkoutPlan `json:"plan"`
	Logs      []SetLog    `json:"logs"`
	StartedAt time.Time   `json:"started_at"`
}

// WorkoutSessionRecord is a finished session
type WorkoutSessionRecord struct {
	ID              string    `json:"id" bson:"_id"`
	ProfileID       string    `json:"profile_id" bson:"profile_id"`
	WorkoutID       string    `json:"workout_id,omitempty" bson:"workout_id,omitempty"`
	Title           string    `json:"title" bson:"title"`
	DurationMinutes int       `json:"duration_minutes" bson:"duration_minutes"`
	Difficulty      string    `json:"difficulty" bson:"difficulty"`
	StartedAt       time.Time `json:"started_at" bson:"started_at"`
	FinishedAt      time.Time `json:"finished_at" bson:"finished_at"`
	Logs            []SetLog  `json:"logs" bson:"logs"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
}

type WorkoutSessionRepository interface {
	Create(ctx context.Context, session *WorkoutSessionRecord) error
	// ListByWorkout returns at most limit sessions of a workout, newest first
	ListByWorkout(ctx context.Context, profileID, workoutID string, limit int) ([]*WorkoutSessionRecord, error)
	// FinishedSince returns finish times of sessions finished at or after since
	FinishedSince(ctx context.Context, profileID string, since time.Time) ([]time.Time, error)
}
