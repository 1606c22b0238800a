package service

import (
	"context"
	"errors"

	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/planner"
	log "github.com/sirupsen/logrus"
)

type ExerciseService struct {
	repo domain.ExerciseRepository
}

func NewExerciseService(repo domain.ExerciseRepository) *ExerciseService {
	return &ExerciseService{repo: repo}
}

func (s *ExerciseService) List(ctx context.Context, filter domain.ExerciseFilter) ([]*domain.Exercise, error) {
	return s.repo.List(ctx, filter)
}

// Get returns one catalog entry
func (s *ExerciseService) Get(ctx context.Context, id string) (*domain.Exercise, error) {
	return s.repo.GetByID(ctx, id)
}

// Seed loads every canonical exercise, tagged with the first focus that
// lists it. Existing names are skipped.
func (s *ExerciseService) Seed(ctx context.Context) (created, skipped int, err error) {
	for _, focus := range planner.TrainingFoci {
		for _, name := range planner.ExerciseListFor(focus) {
			if _, err := s.repo.GetByName(ctx, name); err == nil {
				skipped++
				continue
			} else if !errors.Is(err, domain.ErrExerciseNotFound) {
				return created, skipped, err
			}

			ex := &domain.Exercise{Name: name, MuscleGroup: string(focus)}
			if err := s.repo.Create(ctx, ex); err != nil {
				// another seeder got there first
				if errors.Is(err, domain.ErrDuplicateExercise) {
					skipped++
					continue
				}
				return created, skipped, err
			}
			created++
			log.WithFields(log.Fields{"name": name, "muscle_group": focus}).Debug("exercise seeded")
		}
	}
	return created, skipped, nil
}
