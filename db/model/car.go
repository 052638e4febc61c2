package model

type Car struct {
	Base
	UserID uint   `gorm:"index" json:"user_id"`
	Make   string `json:"make"`
	Model  string `json:"model"`
	Trim   string `json:"trim"`
	Year   int    `json:"year"`
	Alias  string `json:"alias"`
	Avatar string `json:"avatar"`
}
