package postgres

import (
	"context"
	"database/sql"

	"github.com/mcallister/ro-casework/internal/domain"
)

type meetingRepository struct {
	db *sql.DB
}

func NewMeetingRepository(db *sql.DB) *meetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) Create(ctx context.Context, m *domain.Meeting) error {
	query := `
		INSERT INTO meetings (id, user_id, title, date, location, attendees, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.OwnerID, m.Title, m.Date, m.Location, m.Attendees, m.Notes, m.CreatedAt)
	return err
}

func (r *meetingRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Meeting, error) {
	query := `
		SELECT id, user_id, title, date, location, attendees, notes, created_at
		FROM meetings
		WHERE user_id = $1
		ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	meetings := make([]*domain.Meeting, 0)
	for rows.Next() {
		m := &domain.Meeting{}
		err := rows.Scan(&m.ID, &m.OwnerID, &m.Title, &m.Date, &m.Location, &m.Attendees, &m.Notes, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		meetings = append(meetings, m)
	}

	return meetings, rows.Err()
}

func (r *meetingRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM meetings WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("meeting")
	}

	return nil
}
