package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mcallister/ro-casework/internal/domain"
)

type accountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *accountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `
		INSERT INTO accounts (id, username, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.ExecContext(ctx, query, a.ID, a.Username, a.PasswordHash, a.CreatedAt)
	return err
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `SELECT id, username, password_hash, created_at FROM accounts WHERE username = $1`

	a := &domain.Account{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("account")
		}
		return nil, err
	}

	return a, nil
}
