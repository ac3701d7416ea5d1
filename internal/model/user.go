package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role values accepted at registration and checked at login.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account. The password is stored in plaintext,
// matching the hosted backend this service replaces; it is never serialized
// in responses.
type User struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"` // stored lowercased
	Password  string    `json:"-" gorm:"size:255;not null"`                // Never expose in JSON
	Role      string    `json:"role" gorm:"size:50;default:'user';index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
