package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/db/model"
)

type GroupStore interface {
	Create(ctx context.Context, g *model.Group) error
	ByID(ctx context.Context, id uint) (*model.Group, error)
	ByName(ctx context.Context, name string) (*model.Group, error)
	List(ctx context.Context) ([]model.Group, error)
	Update(ctx context.Context, g *model.Group) error
	SetCreator(ctx context.Context, id, userID uint) error
	Delete(ctx context.Context, id uint) error
}

type groupStore struct {
	db *gorm.DB
}

func (s *groupStore) Create(ctx context.Context, g *model.Group) error {
	return s.db.WithContext(ctx).Create(g).Error
}

func (s *groupStore) ByID(ctx context.Context, id uint) (*model.Group, error) {
	g := &model.Group{}
	if err := s.db.WithContext(ctx).First(g, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return g, nil
}

func (s *groupStore) ByName(ctx context.Context, name string) (*model.Group, error) {
	g := &model.Group{}
	if err := s.db.WithContext(ctx).First(g, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return g, nil
}

func (s *groupStore) List(ctx context.Context) ([]model.Group, error) {
	grps := make([]model.Group, 0)
	err := s.db.WithContext(ctx).Find(&grps).Error
	return grps, err
}

func (s *groupStore) Update(ctx context.Context, g *model.Group) error {
	return s.db.WithContext(ctx).Save(g).Error
}

func (s *groupStore) SetCreator(ctx context.Context, id, userID uint) error {
	return s.db.WithContext(ctx).Model(&model.Group{}).
		Where("id = ?", id).
		Update("created_by", userID).Error
}

func (s *groupStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Group{}, id).Error
}
