package domain

import (
	"context"
	"errors"
	"time"
)

var ErrWorkoutNotFound = errors.New("workout not found")

// WorkoutRecord is a saved plan
type WorkoutRecord struct {
	ID              string      `json:"id" bson:"_id"`
	ProfileID       string      `json:"profile_id" bson:"profile_id"`
	Title           string      `json:"title" bson:"title"`
	DurationMinutes int         `json:"duration_minutes" bson:"duration_minutes"`
	Difficulty      string      `json:"difficulty" bson:"difficulty"`
	PlanData        WorkoutPlan `json:"plan_data" bson:"plan_data"`
	CreatedAt       time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at" bson:"updated_at"`
}

type WorkoutRepository interface {
	Create(ctx context.Context, workout *WorkoutRecord) error
	GetByID(ctx context.Context, profileID, id string) (*WorkoutRecord, error)
	// ListRecent returns at most limit workouts, newest first
	ListRecent(ctx context.Context, profileID string, limit int) ([]*WorkoutRecord, error)
	Update(ctx context.Context, workout *WorkoutRecord) error
	Count(ctx context.Context, profileID string) (int64, error)
	// CreatedSince returns creation times of workouts saved at or after since
	CreatedSince(ctx context.Context, profileID string, since time.Time) ([]time.Time, error)
}
