package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mcallister/ro-casework/internal/domain"
	"github.com/mcallister/ro-casework/internal/repository"
)

type hospitalService struct {
	repo repository.HospitalRepository
}

func NewHospitalService(repo repository.HospitalRepository) HospitalService {
	return &hospitalService{repo: repo}
}

func (s *hospitalService) Create(ctx context.Context, h *domain.Hospital) (*domain.Hospital, error) {
	if h.Name == "" {
		return nil, domain.NewValidationError("hospital name is required")
	}

	h.ID = uuid.NewString()
	h.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *hospitalService) List(ctx context.Context, ownerID string) ([]*domain.Hospital, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *hospitalService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}
