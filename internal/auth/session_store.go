package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"herzlink/internal/cache"
)

const sessionKeyPrefix = "session:"

// SessionStoreInterface defines the interface for session storage operations.
type SessionStoreInterface interface {
	StoreSession(ctx context.Context, sessionID, userID, email string, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (userID, email string, err error)
	DeleteSession(ctx context.Context, sessionID string) error
}

// SessionStore tracks live sessions in Redis so logout actually revokes a
// token instead of waiting for it to expire.
type SessionStore struct {
	cache *cache.Client
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a new session store.
func NewSessionStore(cache *cache.Client) *SessionStore {
	return &SessionStore{cache: cache}
}

type sessionRecord struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// StoreSession stores a session record in Redis with TTL.
func (s *SessionStore) StoreSession(ctx context.Context, sessionID, userID, email string, ttl time.Duration) error {
	payload, err := json.Marshal(sessionRecord{UserID: userID, Email: email})
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	return s.cache.Set(ctx, sessionKeyPrefix+sessionID, payload, ttl)
}

// GetSession retrieves a session record from Redis.
func (s *SessionStore) GetSession(ctx context.Context, sessionID string) (userID, email string, err error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+sessionID)
	if err != nil || data == nil {
		return "", "", fmt.Errorf("session not found")
	}

	var record sessionRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return "", "", fmt.Errorf("unmarshal session record: %w", err)
	}
	return record.UserID, record.Email, nil
}

// DeleteSession removes a session record from Redis.
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+sessionID)
}
