package model

type GroupPost struct {
	Base
	UserID   uint     `gorm:"index" json:"user_id"`
	GroupID  uint     `gorm:"index" json:"group_id"`
	CarID    *uint    `json:"car_id"`
	Location string   `json:"location"`
	Text     string   `json:"text"`
	Photos   []string `gorm:"serializer:json" json:"photos"`
	Likes    []uint   `gorm:"serializer:json" json:"likes"`
}

type GroupComment struct {
	Base
	UserID  uint     `gorm:"index" json:"user_id"`
	GroupID uint     `gorm:"index" json:"group_id"`
	PostID  uint     `gorm:"index" json:"post_id"`
	Text    string   `json:"text"`
	Photos  []string `gorm:"serializer:json" json:"photos"`
	Likes   []uint   `gorm:"serializer:json" json:"likes"`
}

type GroupMessage struct {
	Base
	UserID  uint     `gorm:"index" json:"user_id"`
	GroupID uint     `gorm:"index" json:"group_id"`
	Text    string   `json:"text"`
	Photos  []string `gorm:"serializer:json" json:"photos"`
}
