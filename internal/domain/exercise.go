package domain

import (
	"context"
	"errors"
	"time"
)

var (
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrDuplicateExercise = errors.New("exercise name already exists")
)

// Exercise is one entry of the exercise catalog
type Exercise struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`                 // Unique Index
	MuscleGroup string    `json:"muscle_group" bson:"muscle_group"` // Focus label, e.g. "Push", "Legs"
	Equipment   string    `json:"equipment" bson:"equipment"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// ExerciseFilter narrows catalog listings
type ExerciseFilter struct {
	Name        string // case-insensitive substring
	MuscleGroup string
}

type ExerciseRepository interface {
	Create(ctx context.Context, exercise *Exercise) error
	GetByID(ctx context.Context, id string) (*Exercise, error)
	GetByName(ctx context.Context, name string) (*Exercise, error)
	List(ctx context.Context, filter ExerciseFilter) ([]*Exercise, error)
}
