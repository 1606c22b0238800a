package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/mansoorceksport/titan/internal/domain"
)

type fakeProfileRepo struct {
	mu       sync.Mutex
	profiles map[string]*domain.UserProfile
}

func newFakeProfileRepo(profiles ...*domain.UserProfile) *fakeProfileRepo {
	r := &fakeProfileRepo{profiles: map[string]*domain.UserProfile{}}
	for _, p := range profiles {
		r.profiles[p.ID] = p
	}
	return r
}

func (r *fakeProfileRepo) Create(_ context.Context, p *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.ID] = p
	return nil
}

func (r *fakeProfileRepo) GetByID(_ context.Context, id string) (*domain.UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p *domain.UserProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.profiles[p.ID]; !ok {
		return domain.ErrProfileNotFound
	}
	r.profiles[p.ID] = p
	return nil
}

type fakeWorkoutRepo struct {
	mu       sync.Mutex
	workouts []*domain.WorkoutRecord
	err      error
}

func (r *fakeWorkoutRepo) Create(_ context.Context, w *domain.WorkoutRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workouts = append(r.workouts, w)
	return nil
}

func (r *fakeWorkoutRepo) GetByID(_ context.Context, profileID, id string) (*domain.WorkoutRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, w := range r.workouts {
		if w.ID == id && w.ProfileID == profileID {
			cp := *w
			return &cp, nil
		}
	}
	return nil, domain.ErrWorkoutNotFound
}

func (r *fakeWorkoutRepo) byProfile(profileID string) []*domain.WorkoutRecord {
	var out []*domain.WorkoutRecord
	for _, w := range r.workouts {
		if w.ProfileID == profileID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *fakeWorkoutRepo) ListRecent(_ context.Context, profileID string, limit int) ([]*domain.WorkoutRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := r.byProfile(profileID)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeWorkoutRepo) Update(_ context.Context, w *domain.WorkoutRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.workouts {
		if existing.ID == w.ID && existing.ProfileID == w.ProfileID {
			r.workouts[i] = w
			return nil
		}
	}
	return domain.ErrWorkoutNotFound
}

func (r *fakeWorkoutRepo) Count(_ context.Context, profileID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byProfile(profileID))), nil
}

func (r *fakeWorkoutRepo) CreatedSince(_ context.Context, profileID string, since time.Time) ([]time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []time.Time
	for _, w := range r.byProfile(profileID) {
		if !w.CreatedAt.Before(since) {
			out = append(out, w.CreatedAt)
		}
	}
	return out, nil
}

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions []*domain.WorkoutSessionRecord
}

func (r *fakeSessionRepo) Create(_ context.Context, s *domain.WorkoutSessionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = append(r.sessions, s)
	return nil
}

func (r *fakeSessionRepo) ListByWorkout(_ context.Context, profileID, workoutID string, limit int) ([]*domain.WorkoutSessionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.WorkoutSessionRecord
	for i := len(r.sessions) - 1; i >= 0 && len(out) < limit; i-- {
		s := r.sessions[i]
		if s.ProfileID == profileID && s.WorkoutID == workoutID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) FinishedSince(_ context.Context, profileID string, since time.Time) ([]time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []time.Time
	for _, s := range r.sessions {
		if s.ProfileID == profileID && !s.FinishedAt.Before(since) {
			out = append(out, s.FinishedAt)
		}
	}
	return out, nil
}

type fakeNutritionRepo struct {
	mu      sync.Mutex
	entries []*domain.FoodLogEntry
}

func (r *fakeNutritionRepo) Create(_ context.Context, e *domain.FoodLogEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return nil
}

func (r *fakeNutritionRepo) ListBetween(_ context.Context, profileID string, from, to time.Time) ([]*domain.FoodLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.FoodLogEntry
	for _, e := range r.entries {
		if e.ProfileID == profileID && !e.Timestamp.Before(from) && e.Timestamp.Before(to) {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeExerciseRepo struct {
	byName  map[string]*domain.Exercise
	creates int
	err     error
}

func (r *fakeExerciseRepo) Create(_ context.Context, ex *domain.Exercise) error {
	r.creates++
	if _, ok := r.byName[ex.Name]; ok {
		return domain.ErrDuplicateExercise
	}
	ex.ID = fmt.Sprintf("ex%02d", len(r.byName)+1)
	r.byName[ex.Name] = ex
	return nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id string) (*domain.Exercise, error) {
	for _, ex := range r.byName {
		if ex.ID == id {
			return ex, nil
		}
	}
	return nil, domain.ErrExerciseNotFound
}

func (r *fakeExerciseRepo) GetByName(_ context.Context, name string) (*domain.Exercise, error) {
	if r.err != nil {
		return nil, r.err
	}
	if ex, ok := r.byName[name]; ok {
		return ex, nil
	}
	return nil, domain.ErrExerciseNotFound
}

func (r *fakeExerciseRepo) List(_ context.Context, _ domain.ExerciseFilter) ([]*domain.Exercise, error) {
	var out []*domain.Exercise
	for _, ex := range r.byName {
		out = append(out, ex)
	}
	return out, nil
}

type fakeFileRepo struct {
	uploads map[string][]byte
	err     error
}

func (r *fakeFileRepo) Upload(_ context.Context, file []byte, filename string, _ string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.uploads == nil {
		r.uploads = map[string][]byte{}
	}
	r.uploads[filename] = file
	return "http://files.local/titan-plans/" + filename, nil
}

type fakeGenerator struct {
	plan     *domain.WorkoutPlan
	estimate *domain.MacroEstimate
	err      error
	calls    int
	lastReq  domain.PlanRequest
}

func (g *fakeGenerator) GenerateWorkout(_ context.Context, req domain.PlanRequest) (*domain.WorkoutPlan, error) {
	g.calls++
	g.lastReq = req
	return g.plan, g.err
}

func (g *fakeGenerator) AnalyzeFood(_ context.Context, _ string, _ domain.Language) (*domain.MacroEstimate, error) {
	g.calls++
	if g.estimate == nil {
		return nil, g.err
	}
	cp := *g.estimate
	return &cp, g.err
}

type fakeCoach struct {
	reply string
	err   error
}

func (c *fakeCoach) Reply(_ context.Context, _ []domain.ChatMessage, _ string, _ domain.Language) (string, error) {
	return c.reply, c.err
}
