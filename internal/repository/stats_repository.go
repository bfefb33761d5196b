package repository

import (
	"context"

	"github.com/mcallister/ro-casework/internal/domain"
)

type StatsRepository interface {
	CountByStatus(ctx context.Context, ownerID string) ([]*domain.CaseStatusCount, error)
}
