package service

import (
	"context"
	"time"

	"github.com/mcallister/ro-casework/internal/deadline"
	"github.com/mcallister/ro-casework/internal/domain"
	"github.com/mcallister/ro-casework/internal/repository"
)

type statsService struct {
	statsRepo repository.StatsRepository
	caseRepo  repository.CaseRepository
}

func NewStatsService(statsRepo repository.StatsRepository, caseRepo repository.CaseRepository) StatsService {
	return &statsService{statsRepo: statsRepo, caseRepo: caseRepo}
}

func (s *statsService) Dashboard(ctx context.Context, ownerID string) (*domain.DashboardStats, error) {
	counts, err := s.statsRepo.CountByStatus(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stats := &domain.DashboardStats{}
	for _, c := range counts {
		stats.Total += c.Count
		switch c.Status {
		case domain.StatusInProgress:
			stats.Active += c.Count
		case domain.StatusResolved:
			stats.Resolved += c.Count
		}
	}

	cases, err := s.caseRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	// A single clock sample keeps the urgency cutoff consistent across
	// the whole list.
	now := time.Now()
	for _, c := range cases {
		if c.Status == domain.StatusResolved {
			continue
		}
		if c.Status == domain.StatusNew {
			stats.Urgent++
			continue
		}
		if deadline.Classify(c.Deadline, now).Status != deadline.StatusNormal {
			stats.Urgent++
		}
	}

	return stats, nil
}
