package model

type Inbox struct {
	Base
	UserID uint   `gorm:"index" json:"user_id"`
	Type   string `json:"type"`
	Header string `json:"header"`
	Text   string `json:"text"`
	Read   bool   `json:"read"`
}
