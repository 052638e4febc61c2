// Package store holds one repository per entity family. Handlers and
// the domain engines receive these interfaces; nothing reaches for an
// ambient database handle.
package store

import (
	"context"

	"gorm.io/gorm"
)

type Stores struct {
	db *gorm.DB

	Users     UserStore
	Groups    GroupStore
	Members   MemberStore
	Follows   FollowStore
	Posts     PostStore
	GroupFeed GroupFeedStore
	Messages  MessageStore
	Cars      CarStore
	Events    EventStore
	Inbox     InboxStore
}

func New(gdb *gorm.DB) *Stores {
	return &Stores{
		db:        gdb,
		Users:     &userStore{gdb},
		Groups:    &groupStore{gdb},
		Members:   &memberStore{gdb},
		Follows:   &followStore{gdb},
		Posts:     &postStore{gdb},
		GroupFeed: &groupFeedStore{gdb},
		Messages:  &messageStore{gdb},
		Cars:      &carStore{gdb},
		Events:    &eventStore{gdb},
		Inbox:     &inboxStore{gdb},
	}
}

// Transact runs fn against transactional clones of every store. Any
// error rolls the whole batch back.
func (s *Stores) Transact(ctx context.Context, fn func(tx *Stores) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
