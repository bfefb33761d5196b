package service

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

type StatsService interface {
	// Dashboard summarises the officer's caseload for the overview screen.
	Dashboard(ctx context.Context, ownerID string) (*domain.DashboardStats, error)
}
