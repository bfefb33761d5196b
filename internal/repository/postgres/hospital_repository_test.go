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

func TestHospitalRepository(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("create", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHospitalRepository(db)

		mock.ExpectExec("INSERT INTO hospitals").
			WithArgs("hosp-1", "officer-1", "Wexham Park Hospital", "Wexham Street, Slough", "SL2 4HL", "01753 633000", "info@frimleyhealth.nhs.uk", now).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Create(context.Background(), &domain.Hospital{
			ID:        "hosp-1",
			OwnerID:   "officer-1",
			Name:      "Wexham Park Hospital",
			Address:   "Wexham Street, Slough",
			Postcode:  "SL2 4HL",
			Phone:     "01753 633000",
			Email:     "info@frimleyhealth.nhs.uk",
			CreatedAt: now,
		})

		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list is ordered by name", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHospitalRepository(db)

		rows := sqlmock.NewRows([]string{"id", "user_id", "name", "address", "postcode", "phone", "email", "created_at"}).
			AddRow("hosp-2", "officer-1", "Darent Valley Hospital", "", "", "", "", now).
			AddRow("hosp-1", "officer-1", "Wexham Park Hospital", "", "", "", "", now)

		mock.ExpectQuery("SELECT (.+) FROM hospitals WHERE user_id = \\$1 ORDER BY name").
			WithArgs("officer-1").
			WillReturnRows(rows)

		got, err := repo.ListByOwner(context.Background(), "officer-1")

		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Darent Valley Hospital", got[0].Name)
	})

	t.Run("delete of an unowned hospital maps to NOT_FOUND", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewHospitalRepository(db)

		mock.ExpectExec("DELETE FROM hospitals").
			WithArgs("hosp-1", "officer-2").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), "officer-2", "hosp-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestStatsRepository_CountByStatus(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewStatsRepository(db)

	rows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("new", 3).
		AddRow("in-progress", 2).
		AddRow("resolved", 5)

	mock.ExpectQuery("SELECT status, COUNT\\(\\*\\)").
		WithArgs("officer-1").
		WillReturnRows(rows)

	got, err := repo.CountByStatus(context.Background(), "officer-1")

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, domain.StatusNew, got[0].Status)
	assert.Equal(t, 3, got[0].Count)
}
