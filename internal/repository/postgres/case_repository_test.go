package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mcallister/ro-casework/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var caseCols = []string{
	"id", "user_id", "case_reference", "member_number", "member_name", "join_date",
	"employer", "workplace", "address", "postcode", "job_title", "email", "phone",
	"issue", "case_type", "status", "priority", "created_date", "deadline",
}

func caseRow(c *domain.Case) *sqlmock.Rows {
	return sqlmock.NewRows(caseCols).AddRow(
		c.ID, c.OwnerID, c.CaseReference, c.MemberNumber, c.Name, c.JoinDate,
		c.Employer, c.Workplace, c.Address, c.Postcode, c.JobTitle, c.Email, c.Phone,
		c.Issue, string(c.CaseType), string(c.Status), string(c.Priority), c.CreatedDate, c.Deadline,
	)
}

func testCase(id, ownerID string, created time.Time) *domain.Case {
	return &domain.Case{
		ID:           id,
		OwnerID:      ownerID,
		MemberNumber: "12345",
		Name:         "Jane Doe",
		Issue:        "Unfair treatment.",
		CaseType:     domain.CaseTypeMemberAssist,
		Status:       domain.StatusNew,
		Priority:     domain.PriorityHigh,
		CreatedDate:  created,
		Deadline:     created.Add(24 * time.Hour),
	}
}

func TestCaseRepository_Create(t *testing.T) {
	t.Run("inserts every column", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaseRepository(db)

		created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		c := testCase("case-1", "officer-1", created)

		mock.ExpectExec("INSERT INTO cases").
			WithArgs(
				"case-1", "officer-1", "", "12345", "Jane Doe", "",
				"", "", "", "", "", "", "",
				"Unfair treatment.", "Member Assist", "new", "high", created, created.Add(24*time.Hour),
			).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), c)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("propagates persistence errors", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaseRepository(db)

		mock.ExpectExec("INSERT INTO cases").
			WillReturnError(errors.New("connection reset"))

		err := repo.Create(context.Background(), testCase("case-1", "officer-1", time.Now()))

		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestCaseRepository_GetByID(t *testing.T) {
	t.Run("returns the case for its owner", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaseRepository(db)

		created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		c := testCase("case-1", "officer-1", created)

		mock.ExpectQuery("SELECT (.+) FROM cases WHERE id = \\$1 AND user_id = \\$2").
			WithArgs("case-1", "officer-1").
			WillReturnRows(caseRow(c))

		got, err := repo.GetByID(context.Background(), "officer-1", "case-1")

		require.NoError(t, err)
		assert.Equal(t, c, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing case maps to NOT_FOUND", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaseRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM cases").
			WithArgs("nope", "officer-1").
			WillReturnRows(sqlmock.NewRows(caseCols))

		_, err := repo.GetByID(context.Background(), "officer-1", "nope")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("wrong owner looks exactly like a missing case", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaseRepository(db)

		// The owner filter is part of the query: the row simply never
		// comes back for another account.
		mock.ExpectQuery("SELECT (.+) FROM cases").
			WithArgs("case-1", "officer-2").
			WillReturnRows(sqlmock.NewRows(caseCols))

		_, err := repo.GetByID(context.Background(), "officer-2", "case-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestCaseRepository_ListByOwner(t *testing.T) {
	t.Run("orders by created_date descending", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaseRepository(db)

		older := testCase("case-1", "officer-1", time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
		newer := testCase("case-2", "officer-1", time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC))

		rows := caseRow(newer)
		rows.AddRow(
			older.ID, older.OwnerID, older.CaseReference, older.MemberNumber, older.Name, older.JoinDate,
			older.Employer, older.Workplace, older.Address, older.Postcode, older.JobTitle, older.Email, older.Phone,
			older.Issue, string(older.CaseType), string(older.Status), string(older.Priority), older.CreatedDate, older.Deadline,
		)

		mock.ExpectQuery("SELECT (.+) FROM cases WHERE user_id = \\$1 ORDER BY created_date DESC").
			WithArgs("officer-1").
			WillReturnRows(rows)

		got, err := repo.ListByOwner(context.Background(), "officer-1")

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "case-2", got[0].ID)
		assert.Equal(t, "case-1", got[1].ID)
	})

	t.Run("no cases yields an empty slice", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaseRepository(db)

		mock.ExpectQuery("SELECT (.+) FROM cases").
			WithArgs("officer-1").
			WillReturnRows(sqlmock.NewRows(caseCols))

		got, err := repo.ListByOwner(context.Background(), "officer-1")

		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NotNil(t, got)
	})
}

func TestCaseRepository_Update(t *testing.T) {
	t.Run("writes the mutable fields scoped to the owner", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaseRepository(db)

		created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
		c := testCase("case-1", "officer-1", created)
		c.Status = domain.StatusInProgress

		mock.ExpectExec("UPDATE cases").
			WithArgs("in-progress", "high", "Unfair treatment.", c.Deadline, "case-1", "officer-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), c)

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("zero rows affected maps to NOT_FOUND", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaseRepository(db)

		mock.ExpectExec("UPDATE cases").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), testCase("case-1", "officer-2", time.Now()))

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestCaseRepository_Delete(t *testing.T) {
	t.Run("deletes an owned case", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaseRepository(db)

		mock.ExpectExec("DELETE FROM cases").
			WithArgs("case-1", "officer-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), "officer-1", "case-1")

		require.NoError(t, err)
	})

	t.Run("zero rows affected maps to NOT_FOUND", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewCaseRepository(db)

		mock.ExpectExec("DELETE FROM cases").
			WithArgs("case-1", "officer-2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "officer-2", "case-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
