package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mcallister/ro-casework/internal/domain"
	"github.com/mcallister/ro-casework/internal/repository"
)

type meetingService struct {
	repo repository.MeetingRepository
}

func NewMeetingService(repo repository.MeetingRepository) MeetingService {
	return &meetingService{repo: repo}
}

func (s *meetingService) Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error) {
	if m.Title == "" {
		return nil, domain.NewValidationError("meeting title is required")
	}
	if m.Date.IsZero() {
		return nil, domain.NewValidationError("meeting date is required")
	}

	m.ID = uuid.NewString()
	m.CreatedAt = time.Now()

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *meetingService) List(ctx context.Context, ownerID string) ([]*domain.Meeting, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *meetingService) Delete(ctx context.Context, ownerID, id string) error {
	return s.repo.Delete(ctx, ownerID, id)
}
