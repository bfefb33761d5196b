package domain

import "time"

// Account is a regional officer login. The rest of the system only ever
// sees the account ID resolved from a bearer token.
type Account struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
