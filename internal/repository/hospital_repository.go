package repository

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

type HospitalRepository interface {
	Create(ctx context.Context, h *domain.Hospital) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Hospital, error)
	Delete(ctx context.Context, ownerID, id string) error
}
