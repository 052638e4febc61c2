package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/db/model"
)

type CarStore interface {
	Create(ctx context.Context, c *model.Car) error
	ByID(ctx context.Context, id uint) (*model.Car, error)
	ByUser(ctx context.Context, userID uint) ([]model.Car, error)
	Update(ctx context.Context, c *model.Car) error
	Delete(ctx context.Context, id uint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

type carStore struct {
	db *gorm.DB
}

func (s *carStore) Create(ctx context.Context, c *model.Car) error {
	return s.db.WithContext(ctx).Create(c).Error
}

func (s *carStore) ByID(ctx context.Context, id uint) (*model.Car, error) {
	c := &model.Car{}
	if err := s.db.WithContext(ctx).First(c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (s *carStore) ByUser(ctx context.Context, userID uint) ([]model.Car, error) {
	cs := make([]model.Car, 0)
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&cs).Error
	return cs, err
}

func (s *carStore) Update(ctx context.Context, c *model.Car) error {
	return s.db.WithContext(ctx).Save(c).Error
}

func (s *carStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.Car{}, id).Error
}

func (s *carStore) DeleteByUser(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Car{}).Error
}
