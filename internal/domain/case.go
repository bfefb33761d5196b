package domain

import "time"

// Case is a tracked member-assistance matter. Member fields are plain text
// and may be empty when pasted intake text did not contain them.
type Case struct {
	ID            string
	OwnerID       string
	CaseReference string
	MemberNumber  string
	Name          string
	JoinDate      string
	Employer      string
	Workplace     string
	Address       string
	Postcode      string
	JobTitle      string
	Email         string
	Phone         string
	Issue         string
	CaseType      CaseType
	Status        Status
	Priority      Priority
	CreatedDate   time.Time
	Deadline      time.Time
}

// CaseDraft is an unpersisted, partially populated case produced by the
// intake parser or a direct form submission. It carries no identity, status
// or timestamps; the case service assigns those on create.
type CaseDraft struct {
	CaseReference string
	MemberNumber  string
	Name          string
	JoinDate      string
	Employer      string
	Workplace     string
	Address       string
	Postcode      string
	JobTitle      string
	Email         string
	Phone         string
	Issue         string
	CaseType      CaseType
	Priority      Priority
}

// CasePatch carries the mutable fields of an update; nil means "leave as is".
type CasePatch struct {
	Status   *Status
	Priority *Priority
	Issue    *string
	Deadline *time.Time
}

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusResolved:
		return true
	}
	return false
}

type CaseType string

const (
	CaseTypeMemberAssist CaseType = "Member Assist"
	CaseTypeDisciplinary CaseType = "Disciplinary"
	CaseTypeGrievance    CaseType = "Grievance"
	CaseTypeAppeal       CaseType = "Appeal"
	CaseTypeET1          CaseType = "ET1"
	CaseTypeLegalAdvice  CaseType = "Legal Advice"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)
