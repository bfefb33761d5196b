package repository

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

type DocumentRepository interface {
	Create(ctx context.Context, d *domain.DocumentRecord) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.DocumentRecord, error)
	Delete(ctx context.Context, ownerID, id string) error
}
