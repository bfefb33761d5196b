package service

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

type HospitalService interface {
	Create(ctx context.Context, h *domain.Hospital) (*domain.Hospital, error)
	List(ctx context.Context, ownerID string) ([]*domain.Hospital, error)
	Delete(ctx context.Context, ownerID, id string) error
}
