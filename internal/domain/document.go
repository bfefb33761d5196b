package domain

import "time"

// DocumentRecord is a logical metadata record of a generated export.
// The rendered bytes themselves are never stored.
type DocumentRecord struct {
	ID        string
	OwnerID   string
	CaseID    string
	Name      string
	Type      string
	CreatedAt time.Time
}
