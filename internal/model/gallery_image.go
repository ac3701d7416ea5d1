package model

import (
	"time"

	"github.com/google/uuid"
)

// GalleryImage is the metadata row for one stored gallery object. The binary
// itself lives in the object store under ImagePath; ImageURL is the public
// URL derived from it at upload time.
type GalleryImage struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	ProfileID    uint      `json:"profile_id" gorm:"not null;index"`
	UserID       uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index"`
	ImageURL     string    `json:"image_url" gorm:"size:1024;not null"`
	ImagePath    string    `json:"image_path" gorm:"size:512;not null"`
	Caption      *string   `json:"caption" gorm:"size:512"`
	DisplayOrder int       `json:"display_order" gorm:"default:0;index"`
	CreatedAt    time.Time `json:"created_at"`
}
