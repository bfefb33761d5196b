//go:build integration
// +build integration

package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/mcallister/ro-casework/internal/db"
	"github.com/mcallister/ro-casework/internal/domain"
	pgrepo "github.com/mcallister/ro-casework/internal/repository/postgres"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	postgresContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:17.7"),
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	require.NoError(t, db.Migrate(database))

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

// createAccount satisfies the foreign key every owner-scoped table carries.
func createAccount(t *testing.T, database *sql.DB, id, username string) {
	t.Helper()
	repo := pgrepo.NewAccountRepository(database)
	require.NoError(t, repo.Create(context.Background(), &domain.Account{
		ID:           id,
		Username:     username,
		PasswordHash: "x",
		CreatedAt:    time.Now(),
	}))
}
