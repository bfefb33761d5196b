package service

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

type MeetingService interface {
	Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error)
	List(ctx context.Context, ownerID string) ([]*domain.Meeting, error)
	Delete(ctx context.Context, ownerID, id string) error
}
