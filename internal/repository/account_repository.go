package repository

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

type AccountRepository interface {
	Create(ctx context.Context, a *domain.Account) error
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
}
