package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/db/model"
)

type MessageStore interface {
	Create(ctx context.Context, m *model.UserMessage) error
	Conversation(ctx context.Context, a, b uint) ([]model.UserMessage, error)
	// DeleteByUser removes every message the user sent or received.
	DeleteByUser(ctx context.Context, userID uint) error
}

type messageStore struct {
	db *gorm.DB
}

func (s *messageStore) Create(ctx context.Context, m *model.UserMessage) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *messageStore) Conversation(ctx context.Context, a, b uint) ([]model.UserMessage, error) {
	ms := make([]model.UserMessage, 0)
	err := s.db.WithContext(ctx).
		Where("(user_id = ? AND target_id = ?) OR (user_id = ? AND target_id = ?)", a, b, b, a).
		Order("created_at ASC").
		Find(&ms).Error
	return ms, err
}

func (s *messageStore) DeleteByUser(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? OR target_id = ?", userID, userID).
		Delete(&model.UserMessage{}).Error
}
