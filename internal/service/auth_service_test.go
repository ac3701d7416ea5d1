package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"herzlink/internal/auth"
	apperrors "herzlink/internal/errors"
	"herzlink/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		email         string
		password      string
		role          string
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedEmail string
	}{
		{
			name:     "successful registration",
			userName: "Erika",
			email:    "erika@example.com",
			password: "secret1",
			role:     model.RoleUser,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "erika@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedEmail: "erika@example.com",
		},
		{
			name:     "email is lowercased before insert",
			userName: "Erika",
			email:    "Erika@Example.COM",
			password: "secret1",
			role:     model.RoleUser,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "erika@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedEmail: "erika@example.com",
		},
		{
			name:     "duplicate email rejected",
			userName: "Erika",
			email:    "taken@example.com",
			password: "secret1",
			role:     model.RoleUser,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name:     "duplicate check is case-insensitive",
			userName: "Erika",
			email:    "TAKEN@example.com",
			password: "secret1",
			role:     model.RoleUser,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@example.com").Return(&model.User{Email: "taken@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := NewAuthService(mockRepo, auth.NewSessionService("test-secret"), new(MockSessionStore))
			user, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password, tt.role)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.expectedEmail, user.Email)
				assert.Equal(t, tt.userName, user.Name)
				assert.Equal(t, tt.role, user.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	stored := &model.User{
		ID:       uuid.New(),
		Name:     "E",
		Email:    "e@test.de",
		Password: "secret1",
		Role:     model.RoleUser,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		role          string
		setupMock     func(*MockUserRepository, *MockSessionStore)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "e@test.de",
			password: "secret1",
			role:     model.RoleUser,
			setupMock: func(mRepo *MockUserRepository, mStore *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "e@test.de").Return(stored, nil)
				mStore.On("StoreSession", mock.Anything, mock.Anything, stored.ID.String(), "e@test.de", auth.SessionExpiry).Return(nil)
			},
		},
		{
			name:     "email matches case-insensitively",
			email:    "E@Test.DE",
			password: "secret1",
			role:     model.RoleUser,
			setupMock: func(mRepo *MockUserRepository, mStore *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "e@test.de").Return(stored, nil)
				mStore.On("StoreSession", mock.Anything, mock.Anything, stored.ID.String(), "e@test.de", auth.SessionExpiry).Return(nil)
			},
		},
		{
			name:     "wrong role fails with the generic error",
			email:    "e@test.de",
			password: "secret1",
			role:     model.RoleAdmin,
			setupMock: func(mRepo *MockUserRepository, mStore *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "e@test.de").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password fails with the generic error",
			email:    "e@test.de",
			password: "Secret1",
			role:     model.RoleUser,
			setupMock: func(mRepo *MockUserRepository, mStore *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "e@test.de").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email fails with the generic error",
			email:    "nobody@test.de",
			password: "secret1",
			role:     model.RoleUser,
			setupMock: func(mRepo *MockUserRepository, mStore *MockSessionStore) {
				mRepo.On("FindByEmail", mock.Anything, "nobody@test.de").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			mockStore := new(MockSessionStore)
			tt.setupMock(mockRepo, mockStore)

			svc := NewAuthService(mockRepo, auth.NewSessionService("test-secret"), mockStore)
			token, user, err := svc.Login(context.Background(), tt.email, tt.password, tt.role)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)
				assert.Equal(t, "e@test.de", user.Email)
			}

			mockRepo.AssertExpectations(t)
			mockStore.AssertExpectations(t)
		})
	}
}

// Registering a user and logging in with the wrong role must fail exactly like
// a wrong password would.
func TestAuthService_RegisterThenLoginRole(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockStore := new(MockSessionStore)

	var created *model.User
	mockRepo.On("FindByEmail", mock.Anything, "e@test.de").Return(nil, gorm.ErrRecordNotFound).Once()
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
		created = args.Get(1).(*model.User)
		created.ID = uuid.New()
	}).Return(nil)

	svc := NewAuthService(mockRepo, auth.NewSessionService("test-secret"), mockStore)

	_, err := svc.Register(context.Background(), "E", "e@test.de", "secret1", model.RoleUser)
	assert.NoError(t, err)

	mockRepo.On("FindByEmail", mock.Anything, "e@test.de").Return(created, nil)
	mockStore.On("StoreSession", mock.Anything, mock.Anything, created.ID.String(), "e@test.de", auth.SessionExpiry).Return(nil)

	token, user, err := svc.Login(context.Background(), "e@test.de", "secret1", model.RoleUser)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotNil(t, user)

	_, _, err = svc.Login(context.Background(), "e@test.de", "secret1", model.RoleAdmin)
	assert.Equal(t, apperrors.ErrInvalidCredentials, err)
}
