package service

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "herzlink/internal/errors"
	"herzlink/internal/model"
	"herzlink/internal/repository"
	"herzlink/internal/storage"
)

// MaxImageSize is the upload size limit for gallery images.
const MaxImageSize = 5 * 1024 * 1024 // 5MB

// validImageTypes is the declared-MIME allow-list for uploads.
var validImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// UploadInput carries one multipart image upload.
type UploadInput struct {
	ProfileID   uint
	UserID      uuid.UUID
	FileName    string
	ContentType string
	Size        int64
	Data        []byte
	Caption     *string
}

// ImageUpdate carries a partial image update; nil fields are left unchanged.
type ImageUpdate struct {
	Caption      *string
	DisplayOrder *int
}

// GalleryService handles gallery image operations.
type GalleryService interface {
	Upload(ctx context.Context, in UploadInput) (*model.GalleryImage, error)
	ListByProfileID(ctx context.Context, profileID uint) ([]model.GalleryImage, error)
	UpdateImage(ctx context.Context, imageID uint, update ImageUpdate) (*model.GalleryImage, error)
	DeleteImage(ctx context.Context, imageID uint) error
}

type galleryService struct {
	repo  repository.GalleryRepository
	store storage.ObjectStore
}

// NewGalleryService creates a new gallery service.
func NewGalleryService(repo repository.GalleryRepository, store storage.ObjectStore) GalleryService {
	return &galleryService{
		repo:  repo,
		store: store,
	}
}

// Upload validates the file, stores the binary object, then inserts the
// metadata row. The two steps are not atomic: when the metadata insert fails
// the just-stored object is deleted best-effort. The reverse compensation is
// unnecessary because metadata is always written second.
func (s *galleryService) Upload(ctx context.Context, in UploadInput) (*model.GalleryImage, error) {
	if !validImageTypes[in.ContentType] {
		return nil, apperrors.ErrInvalidImageType
	}
	if in.Size > MaxImageSize {
		return nil, apperrors.ErrImageTooLarge
	}

	key := s.objectKey(in.UserID, in.FileName)
	if err := s.store.Put(ctx, key, in.ContentType, in.Data); err != nil {
		return nil, fmt.Errorf("store image: %w", err)
	}

	image := &model.GalleryImage{
		ProfileID: in.ProfileID,
		UserID:    in.UserID,
		ImageURL:  s.store.PublicURL(key),
		ImagePath: key,
		Caption:   in.Caption,
	}
	if err := s.repo.Create(ctx, image); err != nil {
		// Compensate: drop the stored object so it is not orphaned.
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			log.Printf("gallery: failed to remove object %s after metadata error: %v", key, delErr)
		}
		return nil, fmt.Errorf("save image metadata: %w", err)
	}

	return image, nil
}

// objectKey derives a randomized storage path namespaced by user id, keeping
// the original file extension.
func (s *galleryService) objectKey(userID uuid.UUID, fileName string) string {
	ext := strings.TrimPrefix(path.Ext(fileName), ".")
	if ext == "" {
		ext = "bin"
	}
	rand := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("gallery/%s/%d-%s.%s", userID, time.Now().UnixMilli(), rand, ext)
}

// ListByProfileID lists a profile's images in display order.
func (s *galleryService) ListByProfileID(ctx context.Context, profileID uint) ([]model.GalleryImage, error) {
	return s.repo.ListByProfileID(ctx, profileID)
}

// UpdateImage updates caption and/or display order of an image.
func (s *galleryService) UpdateImage(ctx context.Context, imageID uint, update ImageUpdate) (*model.GalleryImage, error) {
	image, err := s.repo.FindByID(ctx, imageID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrImageNotFound
		}
		return nil, fmt.Errorf("find image: %w", err)
	}

	if update.Caption != nil {
		image.Caption = update.Caption
	}
	if update.DisplayOrder != nil {
		image.DisplayOrder = *update.DisplayOrder
	}
	if err := s.repo.Update(ctx, image); err != nil {
		return nil, fmt.Errorf("update image: %w", err)
	}
	return image, nil
}

// DeleteImage removes the stored object best-effort, then the metadata row.
// Overall success requires only the metadata delete; a failed object delete
// is logged and may leave the object orphaned in the store.
func (s *galleryService) DeleteImage(ctx context.Context, imageID uint) error {
	image, err := s.repo.FindByID(ctx, imageID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrImageNotFound
		}
		return fmt.Errorf("find image: %w", err)
	}

	if err := s.store.Delete(ctx, image.ImagePath); err != nil {
		log.Printf("gallery: failed to delete object %s: %v", image.ImagePath, err)
	}

	if err := s.repo.Delete(ctx, imageID); err != nil {
		return fmt.Errorf("delete image metadata: %w", err)
	}
	return nil
}
