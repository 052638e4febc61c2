package model

import "time"

type User struct {
	Base
	Email     string     `gorm:"uniqueIndex" json:"email"`
	Name      string     `gorm:"uniqueIndex" json:"name"`
	Password  string     `json:"-"`
	Avatar    string     `json:"avatar"`
	Bio       string     `json:"bio"`
	Location  string     `json:"location"`
	Youtube   string     `json:"youtube"`
	Twitter   string     `json:"twitter"`
	Facebook  string     `json:"facebook"`
	Instagram string     `json:"instagram"`
	LastLogin *time.Time `json:"last_login"`
}
