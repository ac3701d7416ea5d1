package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "herzlink/internal/errors"
	"herzlink/internal/model"
)

// Services run with a nil cache client in tests; the wrapper degrades to
// cache misses.
func TestProfileService_GetByUserID_NullSentinel(t *testing.T) {
	userID := uuid.New()
	repo := new(MockProfileRepository)
	repo.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewProfileService(repo, nil)
	profile, err := svc.GetByUserID(context.Background(), userID)

	// Absence is a valid state, not an error.
	assert.NoError(t, err)
	assert.Nil(t, profile)
}

func TestProfileService_Create(t *testing.T) {
	userID := uuid.New()

	t.Run("creates when the user has no profile", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(nil)

		svc := NewProfileService(repo, nil)
		profile, err := svc.Create(context.Background(), &model.Profile{UserID: userID, Name: "Esche"})

		assert.NoError(t, err)
		assert.NotNil(t, profile)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a second profile for the same user", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("FindByUserID", mock.Anything, userID).Return(&model.Profile{ID: 1, UserID: userID}, nil)

		svc := NewProfileService(repo, nil)
		profile, err := svc.Create(context.Background(), &model.Profile{UserID: userID})

		assert.Equal(t, apperrors.ErrProfileExists, err)
		assert.Nil(t, profile)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestProfileService_Update(t *testing.T) {
	owner := uuid.New()

	t.Run("keeps the stored owner on full replace", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("FindByID", mock.Anything, uint(12)).Return(&model.Profile{ID: 12, UserID: owner}, nil)
		repo.On("Update", mock.Anything, mock.AnythingOfType("*model.Profile")).Return(nil)

		svc := NewProfileService(repo, nil)
		updated, err := svc.Update(context.Background(), &model.Profile{ID: 12, UserID: uuid.New(), Name: "Neu"})

		assert.NoError(t, err)
		assert.Equal(t, owner, updated.UserID)
		assert.Equal(t, "Neu", updated.Name)
	})

	t.Run("unknown profile id", func(t *testing.T) {
		repo := new(MockProfileRepository)
		repo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProfileService(repo, nil)
		updated, err := svc.Update(context.Background(), &model.Profile{ID: 99})

		assert.Equal(t, apperrors.ErrProfileNotFound, err)
		assert.Nil(t, updated)
	})
}
