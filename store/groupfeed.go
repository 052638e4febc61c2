package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/db/model"
)

// GroupFeedStore covers the three group-scoped content families. They
// share a lifecycle: all of them vanish with the group, and everything
// a departing user wrote in them vanishes with the user.
type GroupFeedStore interface {
	CreatePost(ctx context.Context, p *model.GroupPost) error
	PostByID(ctx context.Context, id uint) (*model.GroupPost, error)
	PostsByGroup(ctx context.Context, groupID uint) ([]model.GroupPost, error)
	UpdatePost(ctx context.Context, p *model.GroupPost) error

	CreateComment(ctx context.Context, c *model.GroupComment) error
	CommentsByPost(ctx context.Context, postID uint) ([]model.GroupComment, error)

	CreateMessage(ctx context.Context, m *model.GroupMessage) error
	MessagesByGroup(ctx context.Context, groupID uint) ([]model.GroupMessage, error)

	DeleteByGroup(ctx context.Context, groupID uint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

type groupFeedStore struct {
	db *gorm.DB
}

func (s *groupFeedStore) CreatePost(ctx context.Context, p *model.GroupPost) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *groupFeedStore) PostByID(ctx context.Context, id uint) (*model.GroupPost, error) {
	p := &model.GroupPost{}
	if err := s.db.WithContext(ctx).First(p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (s *groupFeedStore) PostsByGroup(ctx context.Context, groupID uint) ([]model.GroupPost, error) {
	ps := make([]model.GroupPost, 0)
	err := s.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at DESC").
		Find(&ps).Error
	return ps, err
}

func (s *groupFeedStore) UpdatePost(ctx context.Context, p *model.GroupPost) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *groupFeedStore) CreateComment(ctx context.Context, c *model.GroupComment) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *groupFeedStore) CommentsByPost(ctx context.Context, postID uint) ([]model.GroupComment, error) {
	cs := make([]model.GroupComment, 0)
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&cs).Error
	return cs, err
}

func (s *groupFeedStore) CreateMessage(ctx context.Context, m *model.GroupMessage) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *groupFeedStore) MessagesByGroup(ctx context.Context, groupID uint) ([]model.GroupMessage, error) {
	ms := make([]model.GroupMessage, 0)
	err := s.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("created_at ASC").
		Find(&ms).Error
	return ms, err
}

func (s *groupFeedStore) DeleteByGroup(ctx context.Context, groupID uint) error {
	for _, m := range []any{&model.GroupComment{}, &model.GroupPost{}, &model.GroupMessage{}} {
		if err := s.db.WithContext(ctx).Where("group_id = ?", groupID).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}

func (s *groupFeedStore) DeleteByUser(ctx context.Context, userID uint) error {
	for _, m := range []any{&model.GroupComment{}, &model.GroupPost{}, &model.GroupMessage{}} {
		if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
