package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/db/model"
)

type EventStore interface {
	Create(ctx context.Context, e *model.Event) error
	List(ctx context.Context) ([]model.Event, error)
	ByGroup(ctx context.Context, groupID uint) ([]model.Event, error)
	ByCreator(ctx context.Context, userID uint) ([]model.Event, error)
	DeleteByCreator(ctx context.Context, userID uint) error
}

type eventStore struct {
	db *gorm.DB
}

func (s *eventStore) Create(ctx context.Context, e *model.Event) error {
	return s.db.WithContext(ctx).Create(e).Error
}

func (s *eventStore) List(ctx context.Context) ([]model.Event, error) {
	es := make([]model.Event, 0)
	err := s.db.WithContext(ctx).Find(&es).Error
	return es, err
}

func (s *eventStore) ByGroup(ctx context.Context, groupID uint) ([]model.Event, error) {
	es := make([]model.Event, 0)
	err := s.db.WithContext(ctx).Where("group_id = ?", groupID).Find(&es).Error
	return es, err
}

func (s *eventStore) ByCreator(ctx context.Context, userID uint) ([]model.Event, error) {
	es := make([]model.Event, 0)
	err := s.db.WithContext(ctx).Where("created_by = ?", userID).Find(&es).Error
	return es, err
}

func (s *eventStore) DeleteByCreator(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Where("created_by = ?", userID).Delete(&model.Event{}).Error
}
