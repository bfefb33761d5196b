package domain

import "time"

// Hospital is reference data for an employer site.
type Hospital struct {
	ID        string
	OwnerID   string
	Name      string
	Address   string
	Postcode  string
	Phone     string
	Email     string
	CreatedAt time.Time
}
