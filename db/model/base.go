package model

import (
	"time"
)

// Base is embedded by every entity. Rows are removed physically (the
// cascade coordinator owns referential integrity), so there is no
// soft-delete column.
type Base struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
