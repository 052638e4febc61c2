package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/db/model"
)

type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	ByID(ctx context.Context, id uint) (*model.User, error)
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsEmailOrName(ctx context.Context, email, name string) (bool, error)
	Update(ctx context.Context, u *model.User) error
	Delete(ctx context.Context, id uint) error
}

type userStore struct {
	db *gorm.DB
}

func (s *userStore) Create(ctx context.Context, u *model.User) error {
	return s.db.WithContext(ctx).Create(u).Error
}

func (s *userStore) ByID(ctx context.Context, id uint) (*model.User, error) {
	u := &model.User{}
	if err := s.db.WithContext(ctx).First(u, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (s *userStore) ByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	if err := s.db.WithContext(ctx).First(u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

func (s *userStore) ExistsEmailOrName(ctx context.Context, email, name string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.User{}).
		Where("email = ? OR name = ?", email, name).
		Count(&count).Error
	return count > 0, err
}

func (s *userStore) Update(ctx context.Context, u *model.User) error {
	return s.db.WithContext(ctx).Save(u).Error
}

func (s *userStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.User{}, id).Error
}
