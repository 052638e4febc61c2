package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/db/model"
)

type InboxStore interface {
	Create(ctx context.Context, n *model.Inbox) error
	ByUser(ctx context.Context, userID uint) ([]model.Inbox, error)
	MarkRead(ctx context.Context, id, userID uint) (int64, error)
	DeleteByUser(ctx context.Context, userID uint) error
}

type inboxStore struct {
	db *gorm.DB
}

func (s *inboxStore) Create(ctx context.Context, n *model.Inbox) error {
	return s.db.WithContext(ctx).Create(n).Error
}

func (s *inboxStore) ByUser(ctx context.Context, userID uint) ([]model.Inbox, error) {
	ns := make([]model.Inbox, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ns).Error
	return ns, err
}

func (s *inboxStore) MarkRead(ctx context.Context, id, userID uint) (int64, error) {
	res := s.db.WithContext(ctx).Model(&model.Inbox{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)
	return res.RowsAffected, res.Error
}

func (s *inboxStore) DeleteByUser(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Inbox{}).Error
}
