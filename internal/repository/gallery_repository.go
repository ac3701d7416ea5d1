package repository

import (
	"context"

	"gorm.io/gorm"

	"herzlink/internal/model"
)

// GalleryRepository defines gallery metadata persistence operations.
type GalleryRepository interface {
	Create(ctx context.Context, image *model.GalleryImage) error
	Update(ctx context.Context, image *model.GalleryImage) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.GalleryImage, error)
	ListByProfileID(ctx context.Context, profileID uint) ([]model.GalleryImage, error)
}

type galleryRepository struct {
	db *gorm.DB
}

// NewGalleryRepository creates a new gallery repository.
func NewGalleryRepository(db *gorm.DB) GalleryRepository {
	return &galleryRepository{db: db}
}

// Create inserts a metadata row for a stored object.
func (r *galleryRepository) Create(ctx context.Context, image *model.GalleryImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

// Update saves a full image record.
func (r *galleryRepository) Update(ctx context.Context, image *model.GalleryImage) error {
	return r.db.WithContext(ctx).Save(image).Error
}

// Delete removes the metadata row by ID.
func (r *galleryRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.GalleryImage{}, id).Error
}

// FindByID finds an image by ID.
func (r *galleryRepository) FindByID(ctx context.Context, id uint) (*model.GalleryImage, error) {
	var image model.GalleryImage
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

// ListByProfileID lists a profile's images ordered by explicit display order,
// tie-broken by most recent first.
func (r *galleryRepository) ListByProfileID(ctx context.Context, profileID uint) ([]model.GalleryImage, error) {
	var images []model.GalleryImage
	if err := r.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("display_order ASC").
		Order("created_at DESC").
		Find(&images).Error; err != nil {
		return nil, err
	}
	return images, nil
}
