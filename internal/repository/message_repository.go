package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"herzlink/internal/model"
)

// MessageRepository defines message persistence operations.
type MessageRepository interface {
	Create(ctx context.Context, message *model.Message) error
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Message, error)
	ListBetween(ctx context.Context, a, b uuid.UUID) ([]model.Message, error)
	MarkRead(ctx context.Context, ids []string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository.
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create appends a new message.
func (r *messageRepository) Create(ctx context.Context, message *model.Message) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// ListForUser returns every message with userID as either endpoint.
func (r *messageRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).
		Where("from_user_id = ? OR to_user_id = ?", userID, userID).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// ListBetween returns all messages exchanged between the two participants,
// oldest first.
func (r *messageRepository) ListBetween(ctx context.Context, a, b uuid.UUID) ([]model.Message, error) {
	var messages []model.Message
	if err := r.db.WithContext(ctx).
		Where("(from_user_id = ? AND to_user_id = ?) OR (from_user_id = ? AND to_user_id = ?)", a, b, b, a).
		Order("timestamp ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead flips read to true for the given message IDs. The flag is one-way;
// there is no un-read operation.
func (r *messageRepository) MarkRead(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Model(&model.Message{}).
		Where("id IN ? AND read = ?", ids, false).
		Update("read", true)
	return res.RowsAffected, res.Error
}
