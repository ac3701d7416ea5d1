package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionExpiry is the duration for which session tokens are valid.
const SessionExpiry = 24 * time.Hour

// Claims represents JWT session claims. The session replaces the ambient
// client-global "current user" of the earlier revision: handlers take the
// identity from the request context, never from shared state.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionService handles session token generation and validation.
type SessionService struct {
	secret []byte
}

// NewSessionService creates a new session service with the given secret.
func NewSessionService(secret string) *SessionService {
	return &SessionService{
		secret: []byte(secret),
	}
}

// GenerateToken issues a session token for the user. The session ID (JTI) is
// returned separately for storage in Redis.
func (s *SessionService) GenerateToken(userID uuid.UUID, email, role string) (sessionID string, token string, err error) {
	sessionID = uuid.New().String()
	now := time.Now()
	claims := &Claims{
		UserID: userID.String(),
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	tokenObj := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	token, err = tokenObj.SignedString(s.secret)
	return sessionID, token, err
}

// ValidateToken validates a session token and returns the claims.
func (s *SessionService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ExtractSessionID extracts the session ID (JTI) from a token.
func (s *SessionService) ExtractSessionID(tokenString string) (string, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}
	if claims.ID == "" {
		return "", errors.New("session ID not found")
	}
	return claims.ID, nil
}
