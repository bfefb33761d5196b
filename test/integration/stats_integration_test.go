//go:build integration
// +build integration

package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcallister/ro-casework/internal/domain"
	"github.com/mcallister/ro-casework/internal/repository/postgres"
	"github.com/mcallister/ro-casework/internal/service"
)

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	createAccount(t, db, "officer-1", "alice")
	createAccount(t, db, "officer-2", "bob")

	caseRepo := postgres.NewCaseRepository(db)
	caseService := service.NewCaseService(caseRepo, postgres.NewDocumentRepository(db))
	statsService := service.NewStatsService(postgres.NewStatsRepository(db), caseRepo)

	// two open cases and one resolved for officer-1
	first, err := caseService.Create(ctx, "officer-1", domain.CaseDraft{Name: "A", Issue: "x"})
	require.NoError(t, err)
	_, err = caseService.Create(ctx, "officer-1", domain.CaseDraft{Name: "B", Issue: "y"})
	require.NoError(t, err)

	status := domain.StatusInProgress
	_, err = caseService.Update(ctx, "officer-1", first.ID, domain.CasePatch{Status: &status})
	require.NoError(t, err)
	status = domain.StatusResolved
	_, err = caseService.Update(ctx, "officer-1", first.ID, domain.CasePatch{Status: &status})
	require.NoError(t, err)

	// another officer's caseload must not bleed in
	_, err = caseService.Create(ctx, "officer-2", domain.CaseDraft{Name: "C", Issue: "z"})
	require.NoError(t, err)

	stats, err := statsService.Dashboard(ctx, "officer-1")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Resolved)
	// the remaining case is still new, which counts as urgent
	assert.Equal(t, 1, stats.Urgent)

	other, err := statsService.Dashboard(ctx, "officer-2")
	require.NoError(t, err)
	assert.Equal(t, 1, other.Total)
}
