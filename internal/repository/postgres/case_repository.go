package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mcallister/ro-casework/internal/domain"
)

type caseRepository struct {
	db *sql.DB
}

func NewCaseRepository(db *sql.DB) *caseRepository {
	return &caseRepository{db: db}
}

const caseColumns = `id, user_id, case_reference, member_number, member_name, join_date,
		employer, workplace, address, postcode, job_title, email, phone,
		issue, case_type, status, priority, created_date, deadline`

func (r *caseRepository) Create(ctx context.Context, c *domain.Case) error {
	query := `
		INSERT INTO cases (
			id, user_id, case_reference, member_number, member_name, join_date,
			employer, workplace, address, postcode, job_title, email, phone,
			issue, case_type, status, priority, created_date, deadline
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.OwnerID, c.CaseReference, c.MemberNumber, c.Name, c.JoinDate,
		c.Employer, c.Workplace, c.Address, c.Postcode, c.JobTitle, c.Email, c.Phone,
		c.Issue, c.CaseType, c.Status, c.Priority, c.CreatedDate, c.Deadline,
	)
	return err
}

func (r *caseRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE id = $1 AND user_id = $2`

	c := &domain.Case{}
	err := r.db.QueryRowContext(ctx, query, id, ownerID).Scan(
		&c.ID, &c.OwnerID, &c.CaseReference, &c.MemberNumber, &c.Name, &c.JoinDate,
		&c.Employer, &c.Workplace, &c.Address, &c.Postcode, &c.JobTitle, &c.Email, &c.Phone,
		&c.Issue, &c.CaseType, &c.Status, &c.Priority, &c.CreatedDate, &c.Deadline,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("case")
		}
		return nil, err
	}

	return c, nil
}

func (r *caseRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE user_id = $1 ORDER BY created_date DESC`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cases := make([]*domain.Case, 0)
	for rows.Next() {
		c := &domain.Case{}
		err := rows.Scan(
			&c.ID, &c.OwnerID, &c.CaseReference, &c.MemberNumber, &c.Name, &c.JoinDate,
			&c.Employer, &c.Workplace, &c.Address, &c.Postcode, &c.JobTitle, &c.Email, &c.Phone,
			&c.Issue, &c.CaseType, &c.Status, &c.Priority, &c.CreatedDate, &c.Deadline,
		)
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	return cases, rows.Err()
}

// Update replaces the mutable fields of a case addressed by id and owner.
// Identity, ownership and created_date are never written after creation.
func (r *caseRepository) Update(ctx context.Context, c *domain.Case) error {
	query := `
		UPDATE cases
		SET status = $1, priority = $2, issue = $3, deadline = $4
		WHERE id = $5 AND user_id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		c.Status, c.Priority, c.Issue, c.Deadline, c.ID, c.OwnerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("case")
	}

	return nil
}

func (r *caseRepository) Delete(ctx context.Context, ownerID, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cases WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFoundError("case")
	}

	return nil
}
