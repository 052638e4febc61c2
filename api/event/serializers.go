package event

import "time"

type InCreateEvent struct {
	GroupID     uint      `json:"group" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	EventDate   time.Time `json:"event_date" validate:"required"`
}
