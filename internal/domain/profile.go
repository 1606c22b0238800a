package domain

import (
	"context"
	"errors"
	"time"
)

var ErrProfileNotFound = errors.New("profile not found")

type Gender string

const (
	GenderMale        Gender = "Male"
	GenderFemale      Gender = "Female"
	GenderUnspecified Gender = "Prefer not to say"
)

type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "Beginner"
	LevelIntermediate ExperienceLevel = "Intermediate"
	LevelAdvanced     ExperienceLevel = "Advanced"
)

// UserProfile holds the onboarding answers used to personalise plans.
// Height and Weight keep only the numeric part of what the user typed.
type UserProfile struct {
	ID                string          `json:"id" bson:"_id"`
	Name              string          `json:"name" bson:"name"`
	Age               int             `json:"age" bson:"age"`
	Height            string          `json:"height" bson:"height"` // cm
	Weight            string          `json:"weight" bson:"weight"` // kg
	Gender            Gender          `json:"gender" bson:"gender"`
	Level             ExperienceLevel `json:"level" bson:"level"`
	GeneticAdvantages string          `json:"genetic_advantages,omitempty" bson:"genetic_advantages,omitempty"`
	CreatedAt         time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" bson:"updated_at"`
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *UserProfile) error
	GetByID(ctx context.Context, id string) (*UserProfile, error)
	Update(ctx context.Context, profile *UserProfile) error
}
