package db

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/gearmeet/gearmeet-backend/db/model"
)

// Open connects and migrates the schema. The handle is injected into
// the store layer rather than held as a package global.
func Open(conn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(conn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.GroupMember{},
		&model.UserFollow{},
		&model.UserPost{},
		&model.UserComment{},
		&model.GroupPost{},
		&model.GroupComment{},
		&model.GroupMessage{},
		&model.UserMessage{},
		&model.Car{},
		&model.Event{},
		&model.Inbox{},
	)
}
