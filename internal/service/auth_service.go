package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"herzlink/internal/auth"
	apperrors "herzlink/internal/errors"
	"herzlink/internal/model"
	"herzlink/internal/repository"
)

// AuthService handles registration, login and logout.
//
// Credentials are compared in plaintext. The backend this service replaces
// stored passwords unhashed, and its data must keep working here, so no
// hashing scheme is introduced.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*model.User, error)
	Login(ctx context.Context, email, password, role string) (token string, user *model.User, err error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo       repository.UserRepository
	sessionService *auth.SessionService
	sessionStore   auth.SessionStoreInterface
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, sessionService *auth.SessionService, sessionStore auth.SessionStoreInterface) AuthService {
	return &authService{
		userRepo:       userRepo,
		sessionService: sessionService,
		sessionStore:   sessionStore,
	}
}

// Register creates a new user. Emails are unique case-insensitively: the
// address is lowercased before both the duplicate check and the insert.
func (s *authService) Register(ctx context.Context, name, email, password, role string) (*model.User, error) {
	email = strings.ToLower(email)

	existing, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, apperrors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: password,
		Role:     role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login authenticates a user and returns a session token. Email matches
// case-insensitively; role and password must match exactly. Every mismatch
// returns the same generic error so callers cannot tell which field failed.
func (s *authService) Login(ctx context.Context, email, password, role string) (string, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, strings.ToLower(email))
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if user.Role != role || user.Password != password {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	sessionID, token, err := s.sessionService.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}
	if err := s.sessionStore.StoreSession(ctx, sessionID, user.ID.String(), user.Email, auth.SessionExpiry); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	return token, user, nil
}

// Logout revokes the session behind the token.
func (s *authService) Logout(ctx context.Context, token string) error {
	sessionID, err := s.sessionService.ExtractSessionID(token)
	if err != nil {
		return apperrors.ErrInvalidSession
	}
	return s.sessionStore.DeleteSession(ctx, sessionID)
}
