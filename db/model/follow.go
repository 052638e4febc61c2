package model

// UserFollow is a directed edge. Friend is true only while the reverse
// edge exists; the reconciler keeps both directions in sync.
type UserFollow struct {
	Base
	UserID   uint `gorm:"index" json:"user_id"`
	TargetID uint `gorm:"index" json:"target_id"`
	Friend   bool `json:"friend"`
}
