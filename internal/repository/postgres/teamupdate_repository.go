package postgres

import (
	"context"
	"database/sql"

	"github.com/mcallister/ro-casework/internal/domain"
)

type teamUpdateRepository struct {
	db *sql.DB
}

func NewTeamUpdateRepository(db *sql.DB) *teamUpdateRepository {
	return &teamUpdateRepository{db: db}
}

func (r *teamUpdateRepository) Create(ctx context.Context, u *domain.TeamUpdate) error {
	query := `
		INSERT INTO team_updates (id, user_id, case_id, title, type, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	// case_id is a weak reference, no foreign key: the case may be deleted
	// later without cascading into its updates.
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.OwnerID, u.CaseID, u.Title, u.Type, u.Content, u.CreatedAt)
	return err
}

func (r *teamUpdateRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.TeamUpdate, error) {
	query := `
		SELECT id, user_id, case_id, title, type, content, created_at
		FROM team_updates
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	updates := make([]*domain.TeamUpdate, 0)
	for rows.Next() {
		u := &domain.TeamUpdate{}
		err := rows.Scan(&u.ID, &u.OwnerID, &u.CaseID, &u.Title, &u.Type, &u.Content, &u.CreatedAt)
		if err != nil {
			return nil, err
		}
		updates = append(updates, u)
	}

	return updates, rows.Err()
}
