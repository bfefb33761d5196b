package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/mcallister/ro-casework/internal/domain"
)

type MockCaseRepository struct {
	mock.Mock
}

func (m *MockCaseRepository) Create(ctx context.Context, c *domain.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCaseRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Case, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Case), args.Error(1)
}

func (m *MockCaseRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Case, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Case), args.Error(1)
}

func (m *MockCaseRepository) Update(ctx context.Context, c *domain.Case) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCaseRepository) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, d *domain.DocumentRecord) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDocumentRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.DocumentRecord, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.DocumentRecord), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, ownerID, id string) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Create(ctx context.Context, a *domain.Account) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) CountByStatus(ctx context.Context, ownerID string) ([]*domain.CaseStatusCount, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CaseStatusCount), args.Error(1)
}

type MockTeamUpdateRepository struct {
	mock.Mock
}

func (m *MockTeamUpdateRepository) Create(ctx context.Context, u *domain.TeamUpdate) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockTeamUpdateRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.TeamUpdate, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TeamUpdate), args.Error(1)
}
