package postgres

import (
	"context"
	"database/sql"

	"github.com/mcallister/ro-casework/internal/domain"
)

type documentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *documentRepository {
	return &documentRepository{db: db}
}

func (r *documentRepository) Create(ctx context.Context, d *domain.DocumentRecord) error {
	query := `
		INSERT INTO documents (id, user_id, case_id, name, type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query, d.ID, d.OwnerID, d.CaseID, d.Name, d.Type, d.CreatedAt)
	return err
}

func (r *documentRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.DocumentRecord, error) {
	query := `
		SELECT id, user_id, case_id, name, type, created_at
		FROM documents
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := make([]*domain.DocumentRecord, 0)
	for rows.Next() {
		d := &domain.DocumentRecord{}
		err := rows.Scan(&d.ID, &d.OwnerID, &d.CaseID, &d.Name, &d.Type, &d.CreatedAt)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}

	return docs, rows.Err()
}

func (r *documentRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("document")
	}

	return nil
}
