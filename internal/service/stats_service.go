package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mansoorceksport/titan/internal/domain"
	"github.com/mansoorceksport/titan/internal/metabolic"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// StatsService aggregates the dashboard numbers of a profile
type StatsService struct {
	workoutRepo domain.WorkoutRepository
	sessionRepo domain.WorkoutSessionRepository
	logRepo     domain.NutritionLogRepository
	cache       domain.CacheRepository
	ttl         time.Duration
	now         func() time.Time
}

func NewStatsService(
	workoutRepo domain.WorkoutRepository,
	sessionRepo domain.WorkoutSessionRepository,
	logRepo domain.NutritionLogRepository,
	cache domain.CacheRepository,
	ttl time.Duration,
) *StatsService {
	return &StatsService{
		workoutRepo: workoutRepo,
		sessionRepo: sessionRepo,
		logRepo:     logRepo,
		cache:       cache,
		ttl:         ttl,
		now:         time.Now,
	}
}

// Get returns the profile's stats with "today" taken in loc
func (s *StatsService) Get(ctx context.Context, profileID string, loc *time.Location) (*domain.UserStats, error) {
	if loc == nil {
		loc = time.UTC
	}
	now := s.now().In(loc)
	key := StatsKey(profileID, now)

	if s.cache != nil {
		var cached domain.UserStats
		err := s.cache.Get(ctx, key, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			log.WithError(err).Warn("stats cache read failed")
		}
	}

	stats := &domain.UserStats{}
	var workoutDates, sessionDates []time.Time
	since := now.AddDate(0, 0, -metabolic.DefaultStreakWindow)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.workoutRepo.Count(gCtx, profileID)
		if err != nil {
			return err
		}
		stats.WorkoutsCompleted = n
		return nil
	})

	g.Go(func() error {
		recent, err := s.workoutRepo.ListRecent(gCtx, profileID, RecentWorkoutLimit)
		if err != nil {
			return err
		}
		minutes := 0
		for _, w := range recent {
			minutes += w.DurationMinutes
		}
		stats.MinutesTrained = minutes
		return nil
	})

	g.Go(func() error {
		dates, err := s.workoutRepo.CreatedSince(gCtx, profileID, since)
		if err != nil {
			return err
		}
		workoutDates = dates
		return nil
	})

	g.Go(func() error {
		dates, err := s.sessionRepo.FinishedSince(gCtx, profileID, since)
		if err != nil {
			return err
		}
		sessionDates = dates
		return nil
	})

	g.Go(func() error {
		from, to := dayBounds(now, loc)
		entries, err := s.logRepo.ListBetween(gCtx, profileID, from, to)
		if err != nil {
			return err
		}
		stats.CaloriesToday = metabolic.AggregateDailyTotals(entries).Calories
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	trainingDates := append(workoutDates, sessionDates...)
	stats.CurrentStreak = metabolic.ComputeStreak(trainingDates, now, metabolic.DefaultStreakWindow)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, stats, s.ttl); err != nil {
			log.WithError(err).Warn("stats cache write failed")
		}
	}
	return stats, nil
}
