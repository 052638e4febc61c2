package model

// UserMessage is one delivery: sending to several recipients writes one
// row per target, which keeps "messages where the user is either side"
// a plain indexed query for the deletion coordinator.
type UserMessage struct {
	Base
	UserID   uint     `gorm:"index" json:"user_id"`
	TargetID uint     `gorm:"index" json:"target_id"`
	Text     string   `json:"text"`
	Photos   []string `gorm:"serializer:json" json:"photos"`
}
