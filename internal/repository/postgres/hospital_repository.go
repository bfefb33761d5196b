package postgres

import (
	"context"
	"database/sql"

	"github.com/mcallister/ro-casework/internal/domain"
)

type hospitalRepository struct {
	db *sql.DB
}

func NewHospitalRepository(db *sql.DB) *hospitalRepository {
	return &hospitalRepository{db: db}
}

func (r *hospitalRepository) Create(ctx context.Context, h *domain.Hospital) error {
	query := `
		INSERT INTO hospitals (id, user_id, name, address, postcode, phone, email, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.ExecContext(ctx, query,
		h.ID, h.OwnerID, h.Name, h.Address, h.Postcode, h.Phone, h.Email, h.CreatedAt)
	return err
}

func (r *hospitalRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Hospital, error) {
	query := `
		SELECT id, user_id, name, address, postcode, phone, email, created_at
		FROM hospitals
		WHERE user_id = $1
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hospitals := make([]*domain.Hospital, 0)
	for rows.Next() {
		h := &domain.Hospital{}
		err := rows.Scan(&h.ID, &h.OwnerID, &h.Name, &h.Address, &h.Postcode, &h.Phone, &h.Email, &h.CreatedAt)
		if err != nil {
			return nil, err
		}
		hospitals = append(hospitals, h)
	}

	return hospitals, rows.Err()
}

func (r *hospitalRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM hospitals WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("hospital")
	}

	return nil
}
