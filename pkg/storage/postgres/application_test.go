package postgres_test

import (
	"context"
	"filplus/pkg/domain"
	"filplus/pkg/serrors"
	"filplus/pkg/storage"
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestPgSQL_StoreApplication(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	app := domain.Application{
		ID:                domain.ApplicationID("rec123"),
		Number:            1001,
		Name:              "Allocator One",
		Address:           "f1abc",
		Status:            domain.ApplicationStatusKYC,
		PullRequestNumber: 12,
	}

	stored, err := pgSQL.StoreApplication(ctx, app)
	require.NoError(t, err)
	require.Equal(t, app.ID, stored.ID)
	require.Equal(t, "Allocator One", stored.Name)
	require.False(t, stored.CreatedAt.IsZero())
	require.Empty(t, stored.Fingerprint)

	_, err = pgSQL.StoreApplication(ctx, app)
	require.ErrorIs(t, err, serrors.ErrConflict)

	got, err := pgSQL.ApplicationByID(ctx, app.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 12, got.PullRequestNumber)

	missing, err := pgSQL.ApplicationByID(ctx, "missing")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_ListApplications(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	apps, err := pgSQL.ListApplications(ctx)
	require.NoError(t, err)
	require.Empty(t, apps)

	for _, id := range []domain.ApplicationID{"A1", "A2", "A3"} {
		_, err := pgSQL.StoreApplication(ctx, domain.Application{ID: id, Status: domain.ApplicationStatusKYC})
		require.NoError(t, err)
	}

	apps, err = pgSQL.ListApplications(ctx)
	require.NoError(t, err)
	require.Len(t, apps, 3)
}

func TestPgSQL_UpdateApplication(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	_, err := pgSQL.StoreApplication(ctx, domain.Application{
		ID:           "A1",
		Name:         "old",
		Organization: "org",
		Status:       domain.ApplicationStatusKYC,
	})
	require.NoError(t, err)

	updated, err := pgSQL.UpdateApplication(ctx, "A1", storage.ApplicationUpdates{
		Name:        ptr("X"),
		Status:      ptr(domain.ApplicationStatusGovernanceReview),
		Fingerprint: ptr("sha-2"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "X", updated.Name)
	require.Equal(t, "org", updated.Organization)
	require.Equal(t, domain.ApplicationStatusGovernanceReview, updated.Status)
	require.Equal(t, "sha-2", updated.Fingerprint)
	require.False(t, updated.UpdatedAt.IsZero())

	missing, err := pgSQL.UpdateApplication(ctx, "nope", storage.ApplicationUpdates{Name: ptr("Y")})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UpdateApplication_ExpectedStatus(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	_, err := pgSQL.StoreApplication(ctx, domain.Application{ID: "A1", Status: domain.ApplicationStatusKYC})
	require.NoError(t, err)

	approved, err := pgSQL.UpdateApplication(ctx, "A1", storage.ApplicationUpdates{
		Status:         ptr(domain.ApplicationStatusApproved),
		ExpectedStatus: ptr(domain.ApplicationStatusKYC),
	})
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusApproved, approved.Status)

	// a transition decided on the stale KYC read must not overwrite APPROVED
	_, err = pgSQL.UpdateApplication(ctx, "A1", storage.ApplicationUpdates{
		Status:         ptr(domain.ApplicationStatusGovernanceReview),
		ExpectedStatus: ptr(domain.ApplicationStatusKYC),
	})
	require.ErrorIs(t, err, serrors.ErrConflict)

	got, err := pgSQL.ApplicationByID(ctx, "A1")
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusApproved, got.Status)

	missing, err := pgSQL.UpdateApplication(ctx, "nope", storage.ApplicationUpdates{
		Status:         ptr(domain.ApplicationStatusApproved),
		ExpectedStatus: ptr(domain.ApplicationStatusKYC),
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}
