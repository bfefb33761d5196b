package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mcallister/ro-casework/internal/domain"
	"github.com/mcallister/ro-casework/internal/repository"
)

type documentService struct {
	repo repository.DocumentRepository
}

func NewDocumentService(repo repository.DocumentRepository) DocumentService {
	return &documentService{repo: repo}
}

func (s *documentService) Create(ctx context.Context, d *domain.DocumentRecord) (*domain.DocumentRecord, error) {
	if d.Name == "" {
		return nil, domain.NewValidationError("document name is required")
	}
	if d.Type == "" {
		return nil, domain.NewValidationError("document type is required")
	}

	d.ID = uuid.NewString()
	d.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *documentService) List(ctx context.Context, ownerID string) ([]*domain.DocumentRecord, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *documentService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}
