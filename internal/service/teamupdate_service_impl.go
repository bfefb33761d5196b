package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mcallister/ro-casework/internal/domain"
	"github.com/mcallister/ro-casework/internal/repository"
)

type teamUpdateService struct {
	repo repository.TeamUpdateRepository
}

func NewTeamUpdateService(repo repository.TeamUpdateRepository) TeamUpdateService {
	return &teamUpdateService{repo: repo}
}

func (s *teamUpdateService) Create(ctx context.Context, u *domain.TeamUpdate) (*domain.TeamUpdate, error) {
	if u.Title == "" {
		return nil, domain.NewValidationError("update title is required")
	}
	if u.Content == "" {
		return nil, domain.NewValidationError("update content is required")
	}
	if u.Type == "" {
		u.Type = domain.UpdateTypeGeneral
	}

	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *teamUpdateService) List(ctx context.Context, ownerID string) ([]*domain.TeamUpdate, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}
