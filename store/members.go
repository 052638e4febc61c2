package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/db/model"
)

type MemberStore interface {
	Create(ctx context.Context, m *model.GroupMember) error
	Find(ctx context.Context, userID, groupID uint) (*model.GroupMember, error)
	ListByGroup(ctx context.Context, groupID uint) ([]model.GroupMember, error)
	// IsAdmin is true when any admin record exists for the pair.
	IsAdmin(ctx context.Context, userID, groupID uint) (bool, error)
	AdminGroups(ctx context.Context, userID uint) ([]model.GroupMember, error)
	OtherAdmins(ctx context.Context, groupID, excludeUserID uint) ([]model.GroupMember, error)
	EarliestModerator(ctx context.Context, groupID, excludeUserID uint) (*model.GroupMember, error)
	SetRole(ctx context.Context, id uint, role int) error
	Delete(ctx context.Context, id uint) error
	DeleteByGroup(ctx context.Context, groupID uint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

type memberStore struct {
	db *gorm.DB
}

func (s *memberStore) Create(ctx context.Context, m *model.GroupMember) error {
	return s.db.WithContext(ctx).Create(m).Error
}

func (s *memberStore) Find(ctx context.Context, userID, groupID uint) (*model.GroupMember, error) {
	m := &model.GroupMember{}
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND group_id = ?", userID, groupID).
		First(m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (s *memberStore) ListByGroup(ctx context.Context, groupID uint) ([]model.GroupMember, error) {
	ms := make([]model.GroupMember, 0)
	err := s.db.WithContext(ctx).Where("group_id = ?", groupID).Find(&ms).Error
	return ms, err
}

func (s *memberStore) IsAdmin(ctx context.Context, userID, groupID uint) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.GroupMember{}).
		Where("user_id = ? AND group_id = ? AND role = ?", userID, groupID, model.RoleAdmin).
		Count(&count).Error
	return count > 0, err
}

func (s *memberStore) AdminGroups(ctx context.Context, userID uint) ([]model.GroupMember, error) {
	ms := make([]model.GroupMember, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, model.RoleAdmin).
		Find(&ms).Error
	return ms, err
}

func (s *memberStore) OtherAdmins(ctx context.Context, groupID, excludeUserID uint) ([]model.GroupMember, error) {
	ms := make([]model.GroupMember, 0)
	err := s.db.WithContext(ctx).
		Where("group_id = ? AND role = ? AND user_id <> ?", groupID, model.RoleAdmin, excludeUserID).
		Find(&ms).Error
	return ms, err
}

func (s *memberStore) EarliestModerator(ctx context.Context, groupID, excludeUserID uint) (*model.GroupMember, error) {
	m := &model.GroupMember{}
	err := s.db.WithContext(ctx).
		Where("group_id = ? AND role = ? AND user_id <> ?", groupID, model.RoleModerator, excludeUserID).
		Order("created_at ASC").
		First(m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return m, nil
}

func (s *memberStore) SetRole(ctx context.Context, id uint, role int) error {
	return s.db.WithContext(ctx).Model(&model.GroupMember{}).
		Where("id = ?", id).
		Update("role", role).Error
}

func (s *memberStore) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Delete(&model.GroupMember{}, id).Error
}

func (s *memberStore) DeleteByGroup(ctx context.Context, groupID uint) error {
	return s.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Delete(&model.GroupMember{}).Error
}

func (s *memberStore) DeleteByUser(ctx context.Context, userID uint) error {
	return s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.GroupMember{}).Error
}
