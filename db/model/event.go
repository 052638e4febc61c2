package model

import "time"

type Event struct {
	Base
	CreatedBy   uint      `gorm:"index" json:"created_by"`
	GroupID     uint      `gorm:"index" json:"group_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	EventDate   time.Time `json:"event_date"`
	Likes       []uint    `gorm:"serializer:json" json:"likes"`
}
