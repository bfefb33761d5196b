package repository

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

type MeetingRepository interface {
	Create(ctx context.Context, m *domain.Meeting) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Meeting, error)
	Delete(ctx context.Context, ownerID, id string) error
}
