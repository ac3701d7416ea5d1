package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"herzlink/internal/cache"
	apperrors "herzlink/internal/errors"
	"herzlink/internal/model"
	"herzlink/internal/repository"
)

const profileCacheTTL = 5 * time.Minute

// ProfileService handles profile operations.
type ProfileService interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
	Create(ctx context.Context, profile *model.Profile) (*model.Profile, error)
	Update(ctx context.Context, profile *model.Profile) (*model.Profile, error)
}

type profileService struct {
	repo  repository.ProfileRepository
	cache *cache.Client
}

// NewProfileService creates a new profile service.
func NewProfileService(repo repository.ProfileRepository, cache *cache.Client) ProfileService {
	return &profileService{
		repo:  repo,
		cache: cache,
	}
}

func (s *profileService) cacheKey(userID uuid.UUID) string {
	return fmt.Sprintf("profile:user:%s", userID.String())
}

// GetByUserID returns the user's profile, or (nil, nil) when the user has no
// profile. Absence is a valid state, not an error; the handler layer renders
// it as a null payload.
func (s *profileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(userID)); data != nil {
		var cached model.Profile
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	profile, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	if payload, err := json.Marshal(profile); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(userID), payload, profileCacheTTL)
	}

	return profile, nil
}

// List returns all profiles, newest first.
func (s *profileService) List(ctx context.Context) ([]model.Profile, error) {
	return s.repo.List(ctx)
}

// Create inserts a new profile after checking the user does not already have
// one. The unique index on user_id backs this check against concurrent
// creation; the pre-check keeps the specific error message.
func (s *profileService) Create(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	existing, err := s.repo.FindByUserID(ctx, profile.UserID)
	if err == nil && existing != nil {
		return nil, apperrors.ErrProfileExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check profile existence: %w", err)
	}

	if err := s.repo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(profile.UserID))
	return profile, nil
}

// Update replaces the full record keyed by profile ID. Ownership is not
// verified; any caller holding the profile ID may update it.
func (s *profileService) Update(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	existing, err := s.repo.FindByID(ctx, profile.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}

	// Keep owner and creation time of the stored record.
	profile.UserID = existing.UserID
	profile.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(profile.UserID))
	return profile, nil
}
