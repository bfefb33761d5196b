package repository

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

// TeamUpdateRepository stores append-only notes; updates are never edited
// after creation.
type TeamUpdateRepository interface {
	Create(ctx context.Context, u *domain.TeamUpdate) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.TeamUpdate, error)
}
