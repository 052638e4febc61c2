package model

type UserComment struct {
	Base
	UserID uint     `gorm:"index" json:"user_id"`
	PostID uint     `gorm:"index" json:"post_id"`
	Text   string   `json:"text"`
	Photos []string `gorm:"serializer:json" json:"photos"`
	Likes  []uint   `gorm:"serializer:json" json:"likes"`
}
