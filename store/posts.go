package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/db/model"
)

type PostStore interface {
	CreatePost(ctx context.Context, p *model.UserPost) error
	PostByID(ctx context.Context, id uint) (*model.UserPost, error)
	PostsByUser(ctx context.Context, userID uint) ([]model.UserPost, error)
	UpdatePost(ctx context.Context, p *model.UserPost) error
	DeletePost(ctx context.Context, id uint) error

	CreateComment(ctx context.Context, c *model.UserComment) error
	CommentByID(ctx context.Context, id uint) (*model.UserComment, error)
	CommentsByPost(ctx context.Context, postID uint) ([]model.UserComment, error)
	UpdateComment(ctx context.Context, c *model.UserComment) error
	DeleteComment(ctx context.Context, id uint) error

	// DeleteByUser removes every post and comment the user authored.
	DeleteByUser(ctx context.Context, userID uint) error
}

type postStore struct {
	db *gorm.DB
}

func (s *postStore) CreatePost(ctx context.Context, p *model.UserPost) error {
	return s.db.WithContext(ctx).Create(p).Error
}

func (s *postStore) PostByID(ctx context.Context, id uint) (*model.UserPost, error) {
	p := &model.UserPost{}
	if err := s.db.WithContext(ctx).First(p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (s *postStore) PostsByUser(ctx context.Context, userID uint) ([]model.UserPost, error) {
	ps := make([]model.UserPost, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ps).Error
	return ps, err
}

func (s *postStore) UpdatePost(ctx context.Context, p *model.UserPost) error {
	return s.db.WithContext(ctx).Save(p).Error
}

func (s *postStore) DeletePost(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.UserPost{}, id).Error
}

func (s *postStore) CreateComment(ctx context.Context, c *model.UserComment) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *postStore) CommentByID(ctx context.Context, id uint) (*model.UserComment, error) {
	c := &model.UserComment{}
	if err := s.db.WithContext(ctx).First(c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *postStore) CommentsByPost(ctx context.Context, postID uint) ([]model.UserComment, error) {
	cs := make([]model.UserComment, 0)
	err := s.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&cs).Error
	return cs, err
}

func (s *postStore) UpdateComment(ctx context.Context, c *model.UserComment) error {
	return s.db.WithContext(ctx).Save(c).Error
}

func (s *postStore) DeleteComment(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.UserComment{}, id).Error
}

func (s *postStore) DeleteByUser(ctx context.Context, userID uint) error {
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.UserPost{}).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.UserComment{}).Error
}
