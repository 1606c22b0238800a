package service

import (
	"context"
	"fmt"

	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/metrics"
	"github.com/mansoorceksport/titan/internal/planner"
	log "github.com/sirupsen/logrus"
)

type PlanSource string

const (
	PlanSourceAI       PlanSource = "ai"
	PlanSourceFallback PlanSource = "fallback"
)

// GeneratedPlan is a plan plus where it came from
type GeneratedPlan struct {
	Plan   domain.Plan `json:"plan"`
	Source PlanSource  `json:"source"`
}

type PlanService struct {
	generator domain.PlanGenerator
	profiles  domain.ProfileRepository
	metrics   *metrics.Manager
}

// NewPlanService creates a plan service. generator may be nil, in which case
// every plan is built deterministically.
func NewPlanService(generator domain.PlanGenerator, profiles domain.ProfileRepository, m *metrics.Manager) *PlanService {
	return &PlanService{
		generator: generator,
		profiles:  profiles,
		metrics:   m,
	}
}

// Generate builds a plan for a profile. Generator failures never surface to
// the caller: the deterministic plan is returned instead.
func (s *PlanService) Generate(ctx context.Context, profileID string, req domain.PlanRequest) (*GeneratedPlan, error) {
	profile, err := s.profiles.GetByID(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	req.Profile = profile
	req.Language = domain.ParseLanguage(string(req.Language))

	result := &GeneratedPlan{Source: PlanSourceFallback}
	if plan, ok := s.fromGenerator(ctx, req); ok {
		result.Plan = plan
		result.Source = PlanSourceAI
	} else {
		result.Plan = planner.BuildFallbackPlan(req)
	}

	if s.metrics != nil {
		s.metrics.CounterPlanSource.WithLabelValues(string(result.Source)).Inc()
	}
	return result, nil
}

func (s *PlanService) fromGenerator(ctx context.Context, req domain.PlanRequest) (domain.Plan, bool) {
	if s.generator == nil {
		return domain.Plan{}, false
	}

	wp, err := s.generator.GenerateWorkout(ctx, req)
	if err != nil {
		log.WithError(err).Warn("plan generator failed, using fallback plan")
		return domain.Plan{}, false
	}
	if wp == nil || (len(wp.Exercises) == 0 && len(wp.WeeklySchedule) == 0) {
		log.Warn("plan generator returned an empty plan, using fallback plan")
		return domain.Plan{}, false
	}

	if !req.IsWeekly() {
		return domain.Plan{Kind: domain.PlanKindSingleSession, Session: wp.SessionPlan}, true
	}

	weekly := wp.WeeklySchedule
	if len(weekly) != len(domain.Weekdays) {
		log.WithField("days", len(weekly)).Info("generated schedule is not a full week, backfilling")
		weekly = planner.FallbackSchedule(req)
	}
	return domain.Plan{Kind: domain.PlanKindWeekly, Session: wp.SessionPlan, Weekly: weekly}, true
}

// WeeklySchedule builds the deterministic schedule for a split label and a
// free-text frequency
func (s *PlanService) WeeklySchedule(split, frequency string) (domain.WeeklySchedule, error) {
	freq := planner.DefaultFrequency
	if frequency != "" {
		freq = planner.ParseFrequency(frequency)
	}
	return planner.BuildWeeklySchedule(planner.ParseSplitStrategy(split), freq)
}
