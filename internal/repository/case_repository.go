package repository

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

// CaseRepository persists cases. Every operation is owner-scoped: a record
// addressed with the wrong owner behaves exactly like a missing record.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) error
	GetByID(ctx context.Context, ownerID, id string) (*domain.Case, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Case, error)
	Update(ctx context.Context, c *domain.Case) error
	Delete(ctx context.Context, ownerID, id string) error
}
