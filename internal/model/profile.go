package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the dating persona record owned by exactly one user account.
// The one-profile-per-user invariant is backed by the unique index on UserID
// in addition to the application-level pre-check at creation time.
type Profile struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uuid.UUID `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	Name        string    `json:"name" gorm:"size:255;not null"`
	Age         int       `json:"age"`
	Location    string    `json:"location" gorm:"size:255"`
	Status      string    `json:"status" gorm:"size:255"`
	Interests   []string  `json:"interests" gorm:"serializer:json"`
	Height      int       `json:"height"` // centimeters
	Children    string    `json:"children" gorm:"size:255"`
	Education   string    `json:"education" gorm:"size:255"`
	Languages   []string  `json:"languages" gorm:"serializer:json"`
	Description string    `json:"description" gorm:"type:text"`
	Avatar      string    `json:"avatar" gorm:"size:1024"`
	Online      bool      `json:"online" gorm:"default:false"`
	Verified    bool      `json:"verified" gorm:"default:false"`
	Seeking     string    `json:"seeking" gorm:"size:255"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`

	// Relations
	Images []GalleryImage `json:"-" gorm:"foreignKey:ProfileID"`
}
