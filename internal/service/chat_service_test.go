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

func msg(id string, from, to uuid.UUID, ts int64, read bool) model.Message {
	return model.Message{
		ID:         id,
		FromUserID: from,
		ToUserID:   to,
		Content:    "hi " + id,
		Timestamp:  ts,
		Read:       read,
	}
}

func TestAggregateConversations(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	carla := uuid.New()

	t.Run("one partner, unread counts only inbound", func(t *testing.T) {
		// A→B unread and B→A unread: viewed by A only the inbound one counts.
		messages := []model.Message{
			msg("1", alice, bob, 100, false),
			msg("2", bob, alice, 200, false),
		}

		summaries := aggregateConversations(messages, alice)

		assert.Len(t, summaries, 1)
		assert.Equal(t, bob.String(), summaries[0].PartnerUserID)
		assert.Equal(t, 1, summaries[0].UnreadCount)
		assert.Equal(t, "2", summaries[0].LastMessage.ID)
		assert.EqualValues(t, 200, summaries[0].LastMessage.Timestamp)
	})

	t.Run("read inbound messages do not count", func(t *testing.T) {
		messages := []model.Message{
			msg("1", bob, alice, 100, true),
			msg("2", bob, alice, 200, false),
			msg("3", bob, alice, 300, false),
		}

		summaries := aggregateConversations(messages, alice)

		assert.Len(t, summaries, 1)
		assert.Equal(t, 2, summaries[0].UnreadCount)
	})

	t.Run("sorted by preview timestamp descending", func(t *testing.T) {
		messages := []model.Message{
			msg("1", alice, bob, 100, true),
			msg("2", carla, alice, 300, false),
			msg("3", bob, alice, 200, false),
		}

		summaries := aggregateConversations(messages, alice)

		assert.Len(t, summaries, 2)
		assert.Equal(t, carla.String(), summaries[0].PartnerUserID)
		assert.Equal(t, bob.String(), summaries[1].PartnerUserID)
	})

	t.Run("preview is the newest message regardless of input order", func(t *testing.T) {
		messages := []model.Message{
			msg("late", bob, alice, 900, true),
			msg("early", alice, bob, 100, false),
			msg("middle", bob, alice, 500, false),
		}

		summaries := aggregateConversations(messages, alice)

		assert.Len(t, summaries, 1)
		assert.Equal(t, "late", summaries[0].LastMessage.ID)
	})

	t.Run("self-addressed and third-party messages are skipped", func(t *testing.T) {
		messages := []model.Message{
			msg("1", alice, alice, 100, false),
			msg("2", bob, carla, 200, false),
		}

		summaries := aggregateConversations(messages, alice)

		assert.Empty(t, summaries)
	})

	t.Run("no messages yields no summaries", func(t *testing.T) {
		assert.Empty(t, aggregateConversations(nil, alice))
	})
}

func TestChatService_ListConversations(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	messageRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	messageRepo.On("ListForUser", mock.Anything, alice).Return([]model.Message{
		msg("1", bob, alice, 100, false),
	}, nil)
	userRepo.On("FindByIDs", mock.Anything, []uuid.UUID{bob}).Return([]model.User{
		{ID: bob, Name: "Bob", Email: "bob@test.de", Role: model.RoleUser},
	}, nil)
	profileRepo.On("FindByUserID", mock.Anything, bob).Return(&model.Profile{
		UserID: bob,
		Avatar: "http://example.com/bob.jpg",
	}, nil)

	svc := NewChatService(messageRepo, userRepo, profileRepo)
	summaries, err := svc.ListConversations(context.Background(), alice)

	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, "Bob", summaries[0].PartnerName)
	assert.Equal(t, "http://example.com/bob.jpg", summaries[0].PartnerAvatar)
	assert.Equal(t, 1, summaries[0].UnreadCount)
	messageRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestChatService_ListConversations_PlaceholderAvatarAndUnknownPartner(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	ghost := uuid.New()

	messageRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	messageRepo.On("ListForUser", mock.Anything, alice).Return([]model.Message{
		msg("1", bob, alice, 200, true),
		msg("2", ghost, alice, 100, false),
	}, nil)
	// Only Bob resolves to a registered user; the ghost entry is dropped.
	userRepo.On("FindByIDs", mock.Anything, mock.Anything).Return([]model.User{
		{ID: bob, Name: "bob", Email: "bob@test.de", Role: model.RoleUser},
	}, nil)
	profileRepo.On("FindByUserID", mock.Anything, bob).Return(nil, gorm.ErrRecordNotFound)

	svc := NewChatService(messageRepo, userRepo, profileRepo)
	summaries, err := svc.ListConversations(context.Background(), alice)

	assert.NoError(t, err)
	assert.Len(t, summaries, 1)
	assert.Equal(t, bob.String(), summaries[0].PartnerUserID)
	assert.Equal(t, "https://via.placeholder.com/150/4F46E5/FFFFFF?text=B", summaries[0].PartnerAvatar)
}

func TestChatService_OpenConversation(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	messageRepo := new(MockMessageRepository)
	userRepo := new(MockUserRepository)
	profileRepo := new(MockProfileRepository)

	// Oldest first, as the repository returns them.
	messageRepo.On("ListBetween", mock.Anything, alice, bob).Return([]model.Message{
		msg("1", alice, bob, 100, false),
		msg("2", bob, alice, 200, false),
		msg("3", bob, alice, 300, true),
	}, nil)
	messageRepo.On("MarkRead", mock.Anything, []string{"2"}).Return(int64(1), nil)

	svc := NewChatService(messageRepo, userRepo, profileRepo)
	messages, err := svc.OpenConversation(context.Background(), alice, bob)

	assert.NoError(t, err)
	assert.Len(t, messages, 3)
	// Outbound message untouched, inbound unread flipped in the returned view.
	assert.False(t, messages[0].Read)
	assert.True(t, messages[1].Read)
	assert.True(t, messages[2].Read)
	messageRepo.AssertExpectations(t)
}

func TestChatService_OpenConversation_NothingUnread(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	messageRepo := new(MockMessageRepository)
	messageRepo.On("ListBetween", mock.Anything, alice, bob).Return([]model.Message{
		msg("1", bob, alice, 100, true),
	}, nil)

	svc := NewChatService(messageRepo, new(MockUserRepository), new(MockProfileRepository))
	messages, err := svc.OpenConversation(context.Background(), alice, bob)

	assert.NoError(t, err)
	assert.Len(t, messages, 1)
	// MarkRead must not be called when nothing is unread.
	messageRepo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}

func TestChatService_SendMessage(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	tests := []struct {
		name          string
		from, to      uuid.UUID
		content       string
		expectCreate  bool
		expectedError error
	}{
		{name: "successful send", from: alice, to: bob, content: "  hallo  ", expectCreate: true},
		{name: "empty content rejected", from: alice, to: bob, content: "   ", expectedError: apperrors.ErrEmptyMessage},
		{name: "self message rejected", from: alice, to: alice, content: "hi", expectedError: apperrors.ErrSelfMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			messageRepo := new(MockMessageRepository)
			if tt.expectCreate {
				messageRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Message")).Return(nil)
			}

			svc := NewChatService(messageRepo, new(MockUserRepository), new(MockProfileRepository))
			message, err := svc.SendMessage(context.Background(), tt.from, tt.to, tt.content)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, message)
				messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, message)
				assert.Equal(t, "hallo", message.Content)
				assert.False(t, message.Read)
				assert.NotEmpty(t, message.ID)
				assert.Equal(t, tt.from, message.FromUserID)
				assert.Equal(t, tt.to, message.ToUserID)
				messageRepo.AssertExpectations(t)
			}
		})
	}
}
