package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/metabolic"
	"github.com/mansoorceksport/titan/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type EstimateSource string

const (
	EstimateSourceCache     EstimateSource = "cache"
	EstimateSourceAI        EstimateSource = "ai"
	EstimateSourceHeuristic EstimateSource = "heuristic"
)

// LogFoodInput is a free-text food entry for one meal
type LogFoodInput struct {
	Query    string          `json:"query"`
	Meal     domain.MealType `json:"meal"`
	Language domain.Language `json:"language"`
}

type NutritionService struct {
	generator   domain.PlanGenerator
	logRepo     domain.NutritionLogRepository
	cache       domain.CacheRepository
	metrics     *metrics.Manager
	estimateTTL time.Duration
}

// NewNutritionService creates a nutrition service. generator may be nil, in
// which case estimates come from the keyword table.
func NewNutritionService(
	generator domain.PlanGenerator,
	logRepo domain.NutritionLogRepository,
	cache domain.CacheRepository,
	m *metrics.Manager,
	estimateTTL time.Duration,
) *NutritionService {
	return &NutritionService{
		generator:   generator,
		logRepo:     logRepo,
		cache:       cache,
		metrics:     m,
		estimateTTL: estimateTTL,
	}
}

// Estimate returns clamped macros for a food query: cached value, then the
// generator, then the keyword heuristic. It only fails on an empty query.
func (s *NutritionService) Estimate(ctx context.Context, query string, lang domain.Language) (*domain.MacroEstimate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", domain.ErrInvalidArgument)
	}
	lang = domain.ParseLanguage(string(lang))
	key := FoodEstimateKey(lang, query)

	if s.cache != nil {
		var cached domain.MacroEstimate
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			s.recordSource(EstimateSourceCache)
			return &cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			log.WithError(err).Warn("food estimate cache read failed")
		}
	}

	if s.generator != nil {
		estimate, err := s.generator.AnalyzeFood(ctx, query, lang)
		if err == nil && estimate != nil {
			estimate.MacroData = metabolic.ClampMacros(estimate.MacroData)
			if strings.TrimSpace(estimate.FoodName) == "" {
				estimate.FoodName = query
			}
			if s.cache != nil {
				if err := s.cache.Set(ctx, key, estimate, s.estimateTTL); err != nil {
					log.WithError(err).Warn("food estimate cache write failed")
				}
			}
			s.recordSource(EstimateSourceAI)
			return estimate, nil
		}
		if err != nil {
			log.WithError(err).Warn("food analysis failed, using heuristic estimate")
		}
	}

	estimate := metabolic.EstimateMacrosFromText(query)
	estimate.MacroData = metabolic.ClampMacros(estimate.MacroData)
	s.recordSource(EstimateSourceHeuristic)
	return &estimate, nil
}

// LogFood estimates and stores a food entry for the profile
func (s *NutritionService) LogFood(ctx context.Context, profileID string, in LogFoodInput) (*domain.FoodLogEntry, error) {
	if !in.Meal.Valid() {
		return nil, fmt.Errorf("%w: unknown meal %q", domain.ErrInvalidArgument, in.Meal)
	}

	estimate, err := s.Estimate(ctx, in.Query, in.Language)
	if err != nil {
		return nil, err
	}

	entry := &domain.FoodLogEntry{
		ID:        generateULID(),
		ProfileID: profileID,
		FoodName:  estimate.FoodName,
		Macros:    estimate.MacroData,
		Meal:      in.Meal,
		Timestamp: time.Now().UTC(),
	}
	if err := s.logRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.DeleteByPattern(ctx, StatsPattern(profileID)); err != nil {
			log.WithError(err).WithField("profile_id", profileID).Warn("failed to invalidate stats cache")
		}
	}
	return entry, nil
}

// Today returns the profile's entries for the current calendar day in loc
func (s *NutritionService) Today(ctx context.Context, profileID string, loc *time.Location) (*domain.DailyLog, error) {
	from, to := dayBounds(time.Now(), loc)

	entries, err := s.logRepo.ListBetween(ctx, profileID, from, to)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*domain.FoodLogEntry{}
	}

	return &domain.DailyLog{
		Entries: entries,
		Totals:  metabolic.AggregateDailyTotals(entries),
	}, nil
}

func (s *NutritionService) recordSource(src EstimateSource) {
	if s.metrics != nil {
		s.metrics.CounterEstimateSource.WithLabelValues(string(src)).Inc()
	}
}

// dayBounds returns [midnight, next midnight) of now's calendar day in loc
func dayBounds(now time.Time, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return from, from.AddDate(0, 0, 1)
}
