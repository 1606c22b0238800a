package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mansoorceksport/titan/internal/domain"
)

var numericRun = regexp.MustCompile(`[0-9.]+`)

type ProfileService struct {
	repo domain.ProfileRepository
}

func NewProfileService(repo domain.ProfileRepository) *ProfileService {
	return &ProfileService{repo: repo}
}

// Create stores a new profile with a fresh ULID
func (s *ProfileService) Create(ctx context.Context, profile *domain.UserProfile) error {
	if err := validateProfile(profile); err != nil {
		return err
	}
	normalizeMeasurements(profile)

	now := time.Now().UTC()
	profile.ID = generateULID()
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if err := s.repo.Create(ctx, profile); err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

func (s *ProfileService) Get(ctx context.Context, id string) (*domain.UserProfile, error) {
	return s.repo.GetByID(ctx, id)
}

// Update replaces the editable fields of an existing profile
func (s *ProfileService) Update(ctx context.Context, id string, update *domain.UserProfile) (*domain.UserProfile, error) {
	if err := validateProfile(update); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	normalizeMeasurements(update)
	existing.Name = update.Name
	existing.Age = update.Age
	existing.Height = update.Height
	existing.Weight = update.Weight
	existing.Gender = update.Gender
	existing.Level = update.Level
	existing.GeneticAdvantages = update.GeneticAdvantages
	existing.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func validateProfile(p *domain.UserProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidArgument)
	}
	if p.Age < 0 || p.Age > 120 {
		return fmt.Errorf("%w: age must be between 0 and 120", domain.ErrInvalidArgument)
	}
	return nil
}

func normalizeMeasurements(p *domain.UserProfile) {
	p.Height = extractNumber(p.Height)
	p.Weight = extractNumber(p.Weight)
}

// extractNumber keeps the first numeric run of s, "0" when there is none
func extractNumber(s string) string {
	if m := numericRun.FindString(s); m != "" {
		return m
	}
	return "0"
}
