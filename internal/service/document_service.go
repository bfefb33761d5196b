package service

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

type DocumentService interface {
	// Create records metadata for a document produced outside the case
	// export endpoints, e.g. a scan the officer filed elsewhere.
	Create(ctx context.Context, d *domain.DocumentRecord) (*domain.DocumentRecord, error)
	List(ctx context.Context, ownerID string) ([]*domain.DocumentRecord, error)
	Delete(ctx context.Context, ownerID, id string) error
}
