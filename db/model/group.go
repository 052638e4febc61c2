package model

type Group struct {
	Base
	CreatedBy   uint   `gorm:"index" json:"created_by"`
	Name        string `gorm:"uniqueIndex" json:"name"`
	IsPrivate   bool   `json:"is_private"`
	Description string `json:"description"`
	Location    string `json:"location"`
}
