package model

import "github.com/google/uuid"

// Message is a single direct message between two users. There is no stored
// conversation entity; conversations are derived by grouping messages on the
// non-self participant id.
//
// IDs are millisecond strings generated at send time and Timestamp is unix
// milliseconds, both inherited from the client-local revision of the inbox so
// existing data imports cleanly.
type Message struct {
	ID         string    `json:"id" gorm:"size:32;primaryKey"`
	FromUserID uuid.UUID `json:"fromUserId" gorm:"type:uuid;not null;index"`
	ToUserID   uuid.UUID `json:"toUserId" gorm:"type:uuid;not null;index"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	Timestamp  int64     `json:"timestamp" gorm:"not null;index"`
	Read       bool      `json:"read" gorm:"default:false"`
}
