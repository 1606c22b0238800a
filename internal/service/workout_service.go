package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/planner"
	"github.com/oklog/ulid/v2"
	log "github.com/sirupsen/logrus"
)

const (
	RecentWorkoutLimit = 50
	RecentSessionLimit = 10
)

var ErrExportDisabled = errors.New("plan export storage is not configured")

type WorkoutService struct {
	workoutRepo domain.WorkoutRepository
	sessionRepo domain.WorkoutSessionRepository
	fileRepo    domain.FileRepository
	cache       domain.CacheRepository
}

// NewWorkoutService creates a workout service. fileRepo may be nil when plan
// export is disabled.
func NewWorkoutService(
	workoutRepo domain.WorkoutRepository,
	sessionRepo domain.WorkoutSessionRepository,
	fileRepo domain.FileRepository,
	cache domain.CacheRepository,
) *WorkoutService {
	return &WorkoutService{
		workoutRepo: workoutRepo,
		sessionRepo: sessionRepo,
		fileRepo:    fileRepo,
		cache:       cache,
	}
}

// generateULID creates a new ULID string
func generateULID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// WorkoutUpdate carries the editable fields of a saved workout; nil fields are kept.
// An empty, non-nil weekly schedule turns a weekly program into a single session.
type WorkoutUpdate struct {
	Title           *string                       `json:"title"`
	DurationMinutes *int                          `json:"duration_minutes"`
	Exercises       []domain.ExercisePrescription `json:"exercises"`
	WeeklySchedule  domain.WeeklySchedule         `json:"weekly_schedule"`
}

// Save stores a plan as a workout of the profile
func (s *WorkoutService) Save(ctx context.Context, profileID string, plan domain.WorkoutPlan) (*domain.WorkoutRecord, error) {
	if len(plan.Exercises) == 0 && len(plan.WeeklySchedule) == 0 {
		return nil, fmt.Errorf("%w: plan has no exercises", domain.ErrInvalidArgument)
	}

	title := strings.TrimSpace(plan.Title)
	if title == "" {
		title = planner.DefaultSessionTitle
	}

	now := time.Now().UTC()
	workout := &domain.WorkoutRecord{
		ID:              generateULID(),
		ProfileID:       profileID,
		Title:           title,
		DurationMinutes: plan.DurationMinutes,
		Difficulty:      plan.Difficulty,
		PlanData:        plan,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.workoutRepo.Create(ctx, workout); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, profileID)
	return workout, nil
}

// List returns the latest saved workouts, newest first
func (s *WorkoutService) List(ctx context.Context, profileID string) ([]*domain.WorkoutRecord, error) {
	return s.workoutRepo.ListRecent(ctx, profileID, RecentWorkoutLimit)
}

func (s *WorkoutService) Get(ctx context.Context, profileID, id string) (*domain.WorkoutRecord, error) {
	return s.workoutRepo.GetByID(ctx, profileID, id)
}

// Update renames a workout and/or replaces its exercise list
func (s *WorkoutService) Update(ctx context.Context, profileID, id string, update WorkoutUpdate) (*domain.WorkoutRecord, error) {
	workout, err := s.workoutRepo.GetByID(ctx, profileID, id)
	if err != nil {
		return nil, err
	}

	if update.Title != nil {
		title := strings.TrimSpace(*update.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: title cannot be empty", domain.ErrInvalidArgument)
		}
		workout.Title = title
		workout.PlanData.Title = title
	}
	if update.DurationMinutes != nil {
		if *update.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: duration must be positive", domain.ErrInvalidArgument)
		}
		workout.DurationMinutes = *update.DurationMinutes
		workout.PlanData.DurationMinutes = *update.DurationMinutes
	}
	if update.Exercises != nil {
		workout.PlanData.Exercises = update.Exercises
	}
	if update.WeeklySchedule != nil {
		if n := len(update.WeeklySchedule); n != 0 && n != len(domain.Weekdays) {
			return nil, fmt.Errorf("%w: weekly schedule needs %d days, got %d", domain.ErrInvalidArgument, len(domain.Weekdays), n)
		}
		if len(update.WeeklySchedule) == 0 {
			workout.PlanData.WeeklySchedule = nil
		} else {
			workout.PlanData.WeeklySchedule = update.WeeklySchedule
		}
	}
	if len(workout.PlanData.Exercises) == 0 && len(workout.PlanData.WeeklySchedule) == 0 {
		return nil, fmt.Errorf("%w: plan has no exercises", domain.ErrInvalidArgument)
	}
	workout.UpdatedAt = time.Now().UTC()

	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

// Export uploads the workout's plan as JSON and returns its URL
func (s *WorkoutService) Export(ctx context.Context, profileID, id string) (string, error) {
	if s.fileRepo == nil {
		return "", ErrExportDisabled
	}

	workout, err := s.workoutRepo.GetByID(ctx, profileID, id)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(domain.PlanFromWorkout(workout.PlanData), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode plan: %w", err)
	}

	filename := fmt.Sprintf("plans/%s/%s.json", profileID, workout.ID)
	url, err := s.fileRepo.Upload(ctx, data, filename, "application/json")
	if err != nil {
		return "", fmt.Errorf("failed to upload plan: %w", err)
	}

	log.WithFields(log.Fields{"workout_id": workout.ID, "url": url}).Info("plan exported")
	return url, nil
}

// StartSession seeds set logs from a saved workout or, when workoutID is
// empty, from an ad-hoc plan
func (s *WorkoutService) StartSession(ctx context.Context, profileID, workoutID string, plan *domain.WorkoutPlan) (*domain.ActiveSession, error) {
	var source domain.WorkoutPlan
	switch {
	case workoutID != "":
		workout, err := s.workoutRepo.GetByID(ctx, profileID, workoutID)
		if err != nil {
			return nil, err
		}
		source = workout.PlanData
	case plan != nil:
		source = *plan
	default:
		return nil, fmt.Errorf("%w: workout_id or plan is required", domain.ErrInvalidArgument)
	}

	return &domain.ActiveSession{
		WorkoutID: workoutID,
		Plan:      source,
		Logs:      planner.SeedSetLogs(source),
		StartedAt: time.Now().UTC(),
	}, nil
}

// FinishSessionInput is what the client sends when a session ends. Plan is
// only read for sessions that were not started from a saved workout.
type FinishSessionInput struct {
	Plan      *domain.WorkoutPlan `json:"plan"`
	Logs      []domain.SetLog     `json:"logs"`
	StartedAt time.Time           `json:"started_at"`
}

// FinishSession persists a finished session. Every set must have reps. With a
// workoutID the title, duration and difficulty come from the saved workout,
// otherwise from in.Plan and the record carries no workout id.
func (s *WorkoutService) FinishSession(ctx context.Context, profileID, workoutID string, in FinishSessionInput) (*domain.WorkoutSessionRecord, error) {
	if !planner.SessionComplete(in.Logs) {
		return nil, domain.ErrSessionIncomplete
	}

	var source domain.SessionPlan
	if workoutID != "" {
		workout, err := s.workoutRepo.GetByID(ctx, profileID, workoutID)
		if err != nil {
			return nil, err
		}
		source = domain.SessionPlan{
			Title:           workout.Title,
			DurationMinutes: workout.DurationMinutes,
			Difficulty:      workout.Difficulty,
		}
	} else {
		if in.Plan == nil {
			return nil, fmt.Errorf("%w: workout_id or plan is required", domain.ErrInvalidArgument)
		}
		source = in.Plan.SessionPlan
		source.Title = strings.TrimSpace(source.Title)
		if source.Title == "" {
			source.Title = planner.DefaultSessionTitle
		}
	}

	now := time.Now().UTC()
	startedAt := in.StartedAt
	if startedAt.IsZero() || startedAt.After(now) {
		startedAt = now
	}

	session := &domain.WorkoutSessionRecord{
		ID:              generateULID(),
		ProfileID:       profileID,
		WorkoutID:       workoutID,
		Title:           source.Title,
		DurationMinutes: source.DurationMinutes,
		Difficulty:      source.Difficulty,
		StartedAt:       startedAt,
		FinishedAt:      now,
		Logs:            in.Logs,
		CreatedAt:       now,
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}

	s.invalidateStats(ctx, profileID)
	return session, nil
}

// ListSessions returns the latest finished sessions of a saved workout
func (s *WorkoutService) ListSessions(ctx context.Context, profileID, workoutID string) ([]*domain.WorkoutSessionRecord, error) {
	if _, err := s.workoutRepo.GetByID(ctx, profileID, workoutID); err != nil {
		return nil, err
	}
	return s.sessionRepo.ListByWorkout(ctx, profileID, workoutID, RecentSessionLimit)
}

func (s *WorkoutService) invalidateStats(ctx context.Context, profileID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, StatsPattern(profileID)); err != nil {
		log.WithError(err).WithField("profile_id", profileID).Warn("failed to invalidate stats cache")
	}
}
