package service

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

type AuthService interface {
	// Login verifies the credentials and returns a signed bearer token
	// for the account. Unknown usernames and wrong passwords yield the
	// same UNAUTHORIZED error.
	Login(ctx context.Context, username, password string) (string, *domain.Account, error)

	// EnsureAccount creates the account if the username is free; used to
	// bootstrap the officer login at startup.
	EnsureAccount(ctx context.Context, username, password string) error
}
