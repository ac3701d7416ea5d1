package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"herzlink/internal/model"
)

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	Update(ctx context.Context, profile *model.Profile) error
	FindByID(ctx context.Context, id uint) (*model.Profile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create creates a new profile.
func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// Update saves a full profile record keyed by its primary key.
func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// FindByID finds a profile by ID.
func (r *profileRepository) FindByID(ctx context.Context, id uint) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByUserID finds the single profile owned by userID.
func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns all profiles, newest first.
func (r *profileRepository) List(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}
