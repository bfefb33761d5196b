package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcallister/ro-casework/internal/auth"
	"github.com/mcallister/ro-casework/internal/domain"
)

func testTokens() *auth.TokenService {
	return auth.NewTokenService("test-signing-key", time.Hour)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	t.Run("valid credentials return a usable token", func(t *testing.T) {
		mockAccounts := new(MockAccountRepository)
		tokens := testTokens()
		service := NewAuthService(mockAccounts, tokens)

		account := &domain.Account{
			ID:           "acc-1",
			Username:     "officer",
			PasswordHash: hashOf(t, "secret"),
			CreatedAt:    time.Now(),
		}
		mockAccounts.On("GetByUsername", mock.Anything, "officer").Return(account, nil).Once()

		token, got, err := service.Login(context.Background(), "officer", "secret")

		require.NoError(t, err)
		assert.Equal(t, account, got)

		claims, err := tokens.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, "acc-1", claims.UserID)
		assert.Equal(t, "officer", claims.Username)
	})

	t.Run("wrong password is unauthorized", func(t *testing.T) {
		mockAccounts := new(MockAccountRepository)
		service := NewAuthService(mockAccounts, testTokens())

		account := &domain.Account{
			ID:           "acc-1",
			Username:     "officer",
			PasswordHash: hashOf(t, "secret"),
		}
		mockAccounts.On("GetByUsername", mock.Anything, "officer").Return(account, nil).Once()

		token, got, err := service.Login(context.Background(), "officer", "wrong")

		assert.Empty(t, token)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown username gets the same error as a wrong password", func(t *testing.T) {
		mockAccounts := new(MockAccountRepository)
		service := NewAuthService(mockAccounts, testTokens())

		mockAccounts.On("GetByUsername", mock.Anything, "nobody").
			Return(nil, domain.NewNotFoundError("account")).Once()

		_, _, notFoundErr := service.Login(context.Background(), "nobody", "secret")

		account := &domain.Account{ID: "acc-1", Username: "officer", PasswordHash: hashOf(t, "secret")}
		mockAccounts.On("GetByUsername", mock.Anything, "officer").Return(account, nil).Once()

		_, _, wrongPassErr := service.Login(context.Background(), "officer", "wrong")

		assert.ErrorIs(t, notFoundErr, domain.ErrUnauthorized)
		assert.Equal(t, notFoundErr.Error(), wrongPassErr.Error())
	})

	t.Run("empty credentials fail validation", func(t *testing.T) {
		service := NewAuthService(new(MockAccountRepository), testTokens())

		_, _, err := service.Login(context.Background(), "", "")

		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestAuthService_EnsureAccount(t *testing.T) {
	t.Run("creates the account when the username is free", func(t *testing.T) {
		mockAccounts := new(MockAccountRepository)
		service := NewAuthService(mockAccounts, testTokens())

		mockAccounts.On("GetByUsername", mock.Anything, "officer").
			Return(nil, domain.NewNotFoundError("account")).Once()

		var created *domain.Account
		mockAccounts.On("Create", mock.Anything, mock.AnythingOfType("*domain.Account")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*domain.Account) }).
			Return(nil).Once()

		err := service.EnsureAccount(context.Background(), "officer", "secret")

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "officer", created.Username)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret")))
		mockAccounts.AssertExpectations(t)
	})

	t.Run("existing account is left alone", func(t *testing.T) {
		mockAccounts := new(MockAccountRepository)
		service := NewAuthService(mockAccounts, testTokens())

		account := &domain.Account{ID: "acc-1", Username: "officer", PasswordHash: hashOf(t, "old")}
		mockAccounts.On("GetByUsername", mock.Anything, "officer").Return(account, nil).Once()

		err := service.EnsureAccount(context.Background(), "officer", "new-password")

		require.NoError(t, err)
		mockAccounts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}
