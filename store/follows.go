package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/db/model"
)

type FollowStore interface {
	Create(ctx context.Context, f *model.UserFollow) error
	Find(ctx context.Context, userID, targetID uint) (*model.UserFollow, error)
	Followers(ctx context.Context, targetID uint) ([]model.UserFollow, error)
	Following(ctx context.Context, userID uint) ([]model.UserFollow, error)
	SetFriend(ctx context.Context, id uint, friend bool) error
	Delete(ctx context.Context, id uint) error
	// DeleteByUser removes every edge naming the user on either side.
	DeleteByUser(ctx context.Context, userID uint) error
}

type followStore struct {
	db *gorm.DB
}

func (s *followStore) Create(ctx context.Context, f *model.UserFollow) error {
	return s.db.WithContext(ctx).Create(f).Error
}

func (s *followStore) Find(ctx context.Context, userID, targetID uint) (*model.UserFollow, error) {
	f := &model.UserFollow{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND target_id = ?", userID, targetID).
		First(f).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return f, nil
}

func (s *followStore) Followers(ctx context.Context, targetID uint) ([]model.UserFollow, error) {
	fs := make([]model.UserFollow, 0)
	err := s.db.WithContext(ctx).Where("target_id = ?", targetID).Find(&fs).Error
	return fs, err
}

func (s *followStore) Following(ctx context.Context, userID uint) ([]model.UserFollow, error) {
	fs := make([]model.UserFollow, 0)
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&fs).Error
	return fs, err
}

func (s *followStore) SetFriend(ctx context.Context, id uint, friend bool) error {
	return s.db.WithContext(ctx).Model(&model.UserFollow{}).
		Where("id = ?", id).
		Update("friend", friend).Error
}

func (s *followStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.UserFollow{}, id).Error
}

func (s *followStore) DeleteByUser(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? OR target_id = ?", userID, userID).
		Delete(&model.UserFollow{}).Error
}
