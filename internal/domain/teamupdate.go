package domain

import "time"

// TeamUpdate is an append-only note, optionally referencing a case. CaseID
// is a weak reference used for lookup only; the case may be deleted
// independently without touching its updates.
type TeamUpdate struct {
	ID        string
	OwnerID   string
	CaseID    string
	Title     string
	Type      UpdateType
	Content   string
	CreatedAt time.Time
}

type UpdateType string

const (
	UpdateTypeMember       UpdateType = "Member Update"
	UpdateTypeCaseProgress UpdateType = "Case Progress"
	UpdateTypeLegalRequest UpdateType = "Legal Request"
	UpdateTypeGeneral      UpdateType = "General"
)
