package service

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

type TeamUpdateService interface {
	Create(ctx context.Context, u *domain.TeamUpdate) (*domain.TeamUpdate, error)
	List(ctx context.Context, ownerID string) ([]*domain.TeamUpdate, error)
}
