package postgres_test

import (
	"context"
	"filplus/pkg/domain"
	"filplus/pkg/serrors"
	"filplus/pkg/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_BulkUpsertIssueDetails(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	created := time.Date(2025, 5, 15, 17, 25, 32, 0, time.UTC)
	issues := []domain.IssueDetails{
		{GithubIssueID: 1001, GithubIssueNumber: 1, Title: "first", State: "open", IssueCreatedAt: created},
		{GithubIssueID: 1002, GithubIssueNumber: 2, Title: "second", State: "open"},
	}

	res, err := pgSQL.BulkUpsertIssueDetails(ctx, issues, storage.IssueKeyGithubIssueID)
	require.NoError(t, err)
	require.Equal(t, storage.BulkResult{Inserted: 2}, res)

	// link the first issue, the next sync must not unlink it
	linked, err := pgSQL.UpdateIssueDetails(ctx, 1, storage.IssueDetailsUpdates{
		ApplicationID: ptr(domain.ApplicationID("A1")),
		Status:        ptr(domain.ApplicationStatusKYC),
	})
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationID("A1"), linked.ApplicationID)

	issues[0].State = "closed"
	issues[0].IssueClosedAt = created.Add(time.Hour)
	issues = append(issues,
		domain.IssueDetails{GithubIssueID: 1003, GithubIssueNumber: 3, Title: "third"},
		domain.IssueDetails{GithubIssueID: 1003, GithubIssueNumber: 3, Title: "third, edited"},
	)

	res, err = pgSQL.BulkUpsertIssueDetails(ctx, issues, storage.IssueKeyGithubIssueID)
	require.NoError(t, err)
	require.Equal(t, storage.BulkResult{Inserted: 1, Updated: 2}, res)

	got, err := pgSQL.IssueDetailsByApplicationID(ctx, "A1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "closed", got.State)
	require.Equal(t, domain.ApplicationStatusKYC, got.Status)
	require.True(t, got.IssueCreatedAt.Equal(created))
	require.True(t, got.IssueClosedAt.Equal(created.Add(time.Hour)))

	page, err := pgSQL.IssueDetailsPage(ctx, 1, 10, "")
	require.NoError(t, err)
	require.Len(t, page.Results, 3)
	require.Equal(t, 3, page.Results[0].GithubIssueNumber)
	require.Equal(t, "third, edited", page.Results[0].Title)

	res, err = pgSQL.BulkUpsertIssueDetails(ctx, nil, storage.IssueKeyGithubIssueID)
	require.NoError(t, err)
	require.Equal(t, storage.BulkResult{}, res)

	_, err = pgSQL.BulkUpsertIssueDetails(ctx, issues, storage.IssueKeyField("title"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestPgSQL_BulkUpsertIssueDetails_ByIssueNumber(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	_, err := pgSQL.SaveIssueDetails(ctx, domain.IssueDetails{GithubIssueID: 1, GithubIssueNumber: 7, Title: "a"})
	require.NoError(t, err)

	res, err := pgSQL.BulkUpsertIssueDetails(ctx, []domain.IssueDetails{
		{GithubIssueID: 1, GithubIssueNumber: 7, Title: "b"},
	}, storage.IssueKeyGithubIssueNumber)
	require.NoError(t, err)
	require.Equal(t, storage.BulkResult{Updated: 1}, res)
}

func TestPgSQL_SaveAndUpdateIssueDetails(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	saved, err := pgSQL.SaveIssueDetails(ctx, domain.IssueDetails{
		GithubIssueID:     42,
		GithubIssueNumber: 4,
		ApplicationID:     "A1",
		Name:              "Allocator",
		Address:           "f1abc",
	})
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationID("A1"), saved.ApplicationID)
	require.False(t, saved.UpdatedAt.IsZero())

	updated, err := pgSQL.UpdateIssueDetailsByApplicationID(ctx, "A1", storage.IssueDetailsUpdates{
		Status: ptr(domain.ApplicationStatusApproved),
		Name:   ptr("Renamed"),
	})
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusApproved, updated.Status)
	require.Equal(t, "Renamed", updated.Name)
	require.Equal(t, "f1abc", updated.Address)

	missing, err := pgSQL.UpdateIssueDetailsByApplicationID(ctx, "A2", storage.IssueDetailsUpdates{Name: ptr("x")})
	require.NoError(t, err)
	require.Nil(t, missing)

	search, err := pgSQL.IssueDetailsPage(ctx, 1, 10, "RENAMED")
	require.NoError(t, err)
	require.Len(t, search.Results, 1)
}
