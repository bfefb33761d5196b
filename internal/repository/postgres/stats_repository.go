package postgres

import (
	"context"
	"database/sql"

	"github.com/mcallister/ro-casework/internal/domain"
)

type statsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *statsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountByStatus(ctx context.Context, ownerID string) ([]*domain.CaseStatusCount, error) {
	query := `
		SELECT status, COUNT(*)
		FROM cases
		WHERE user_id = $1
		GROUP BY status
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make([]*domain.CaseStatusCount, 0)
	for rows.Next() {
		c := &domain.CaseStatusCount{}
		if err := rows.Scan(&c.Status, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}

	return counts, rows.Err()
}
