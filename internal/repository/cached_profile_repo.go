package repository

import (
	"context"
	"time"

	"github.com/mansoorceksport/titan/internal/domain"
)

const (
	profileKeyPrefix = "profile:id:"
	profileCacheTTL  = 10 * time.Minute
)

// CachedProfileRepository wraps a profile store with Redis caching. Profiles
// are read on every plan generation but change rarely.
type CachedProfileRepository struct {
	store domain.ProfileRepository
	cache domain.CacheRepository
}

// NewCachedProfileRepository creates a new cached profile repository
func NewCachedProfileRepository(store domain.ProfileRepository, cache domain.CacheRepository) *CachedProfileRepository {
	return &CachedProfileRepository{
		store: store,
		cache: cache,
	}
}

// GetByID retrieves a profile with caching
func (r *CachedProfileRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	key := profileKeyPrefix + id

	// Try cache first
	var profile domain.UserProfile
	if err := r.cache.Get(ctx, key, &profile); err == nil {
		return &profile, nil
	}

	result, err := r.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Store in cache (ignore cache errors)
	_ = r.cache.Set(ctx, key, result, profileCacheTTL)

	return result, nil
}

// Create stores a profile; nothing is cached until first read
func (r *CachedProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	return r.store.Create(ctx, profile)
}

// Update writes through and invalidates the cached copy
func (r *CachedProfileRepository) Update(ctx context.Context, profile *domain.UserProfile) error {
	if err := r.store.Update(ctx, profile); err != nil {
		return err
	}
	_ = r.cache.Delete(ctx, profileKeyPrefix+profile.ID)
	return nil
}
