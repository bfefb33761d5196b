package domain

import "time"

type Meeting struct {
	ID        string
	OwnerID   string
	Title     string
	Date      time.Time
	Location  string
	Attendees string
	Notes     string
	CreatedAt time.Time
}
