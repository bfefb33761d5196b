package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcallister/ro-casework/internal/auth"
	"github.com/mcallister/ro-casework/internal/domain"
	"github.com/mcallister/ro-casework/internal/repository"
)

type authService struct {
	accounts repository.AccountRepository
	tokens   *auth.TokenService
}

func NewAuthService(accounts repository.AccountRepository, tokens *auth.TokenService) AuthService {
	return &authService{accounts: accounts, tokens: tokens}
}

var errBadCredentials = &domain.DomainError{
	Code:    "UNAUTHORIZED",
	Message: "invalid username or password",
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *domain.Account, error) {
	if username == "" || password == "" {
		return "", nil, domain.NewValidationError("username and password are required")
	}

	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, errBadCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, errBadCredentials
	}

	token, err := s.tokens.Generate(account.ID, account.Username)
	if err != nil {
		return "", nil, err
	}

	return token, account, nil
}

func (s *authService) EnsureAccount(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return domain.NewValidationError("username and password are required")
	}

	if _, err := s.accounts.GetByUsername(ctx, username); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	account := &domain.Account{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	return s.accounts.Create(ctx, account)
}
