package model

// Membership tiers. Role checks treat any matching admin record as
// authorizing, so duplicate legacy rows stay harmless.
const (
	RoleMember    = 1
	RoleModerator = 2
	RoleAdmin     = 3
)

type GroupMember struct {
	Base
	UserID   uint `gorm:"uniqueIndex:idx_member_user_group" json:"user_id"`
	GroupID  uint `gorm:"uniqueIndex:idx_member_user_group" json:"group_id"`
	IsMember bool `json:"is_member"`
	Role     int  `json:"role"`
}
