package model

type UserPost struct {
	Base
	UserID   uint     `gorm:"index" json:"user_id"`
	CarID    *uint    `json:"car_id"`
	Location string   `json:"location"`
	Text     string   `json:"text"`
	Photos   []string `gorm:"serializer:json" json:"photos"`
	Likes    []uint   `gorm:"serializer:json" json:"likes"`
}
