package postgres_test

import (
	"context"
	"filplus/pkg/domain"
	"filplus/pkg/serrors"
	"filplus/pkg/storage"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPgSQL_SaveApplicationDetails_OptimisticConcurrency(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	details := domain.ApplicationDetails{
		ID:      "A1",
		Name:    "Allocator",
		Datacap: 5,
		Status:  domain.ApplicationStatusKYC,
	}

	saved, err := pgSQL.SaveApplicationDetails(ctx, details, 0)
	require.NoError(t, err)
	require.Equal(t, 1, saved.Version)
	require.EqualValues(t, 5, saved.Datacap)

	// replaying the creation is rejected
	_, err = pgSQL.SaveApplicationDetails(ctx, details, 0)
	require.ErrorIs(t, err, serrors.ErrConflict)

	details.Name = "Renamed"
	saved, err = pgSQL.SaveApplicationDetails(ctx, details, 1)
	require.NoError(t, err)
	require.Equal(t, 2, saved.Version)
	require.Equal(t, "Renamed", saved.Name)

	// stale writer
	details.Name = "Stale"
	_, err = pgSQL.SaveApplicationDetails(ctx, details, 1)
	require.ErrorIs(t, err, serrors.ErrConflict)

	got, err := pgSQL.ApplicationDetailsByID(ctx, "A1")
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)
	require.Equal(t, 2, got.Version)

	_, err = pgSQL.SaveApplicationDetails(ctx, domain.ApplicationDetails{ID: "A2"}, -1)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestPgSQL_UpdateApplicationDetails(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	_, err := pgSQL.SaveApplicationDetails(ctx, domain.ApplicationDetails{
		ID:      "A1",
		Name:    "before",
		Address: "f1xyz",
		Datacap: 5,
		Status:  domain.ApplicationStatusKYC,
	}, 0)
	require.NoError(t, err)

	updated, err := pgSQL.UpdateApplicationDetails(ctx, "A1", storage.ApplicationDetailsUpdates{
		Name:   ptr("after"),
		Status: ptr(domain.ApplicationStatusGovernanceReview),
	})
	require.NoError(t, err)
	require.Equal(t, "after", updated.Name)
	require.Equal(t, "f1xyz", updated.Address)
	require.Equal(t, domain.ApplicationStatusGovernanceReview, updated.Status)
	require.Equal(t, 2, updated.Version)

	missing, err := pgSQL.UpdateApplicationDetails(ctx, "nope", storage.ApplicationDetailsUpdates{Name: ptr("x")})
	require.NoError(t, err)
	require.Nil(t, missing)

	none, err := pgSQL.ApplicationDetailsByID(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, none)
}

func TestPgSQL_ApplicationDetailsPage(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	for i := range 5 {
		_, err := pgSQL.SaveApplicationDetails(ctx, domain.ApplicationDetails{
			ID:      domain.ApplicationID(fmt.Sprintf("A%d", i)),
			Name:    fmt.Sprintf("Allocator %d", i),
			Address: fmt.Sprintf("f1addr%d", i),
			Status:  domain.ApplicationStatusKYC,
		}, 0)
		require.NoError(t, err)
	}
	_, err := pgSQL.SaveApplicationDetails(ctx, domain.ApplicationDetails{
		ID:      "B1",
		Name:    "Storage Co",
		Address: "f1SPECIAL",
		Status:  domain.ApplicationStatusKYC,
	}, 0)
	require.NoError(t, err)

	p1, err := pgSQL.ApplicationDetailsPage(ctx, 1, 4, "")
	require.NoError(t, err)
	require.Len(t, p1.Results, 4)
	require.Equal(t, storage.Pagination{CurrentPage: 1, TotalPages: 2, TotalItems: 6, ItemsPerPage: 4}, p1.Pagination)

	p2, err := pgSQL.ApplicationDetailsPage(ctx, 2, 4, "")
	require.NoError(t, err)
	require.Len(t, p2.Results, 2)

	byName, err := pgSQL.ApplicationDetailsPage(ctx, 1, 10, "allocator")
	require.NoError(t, err)
	require.Equal(t, 5, byName.Pagination.TotalItems)

	byAddress, err := pgSQL.ApplicationDetailsPage(ctx, 1, 10, "special")
	require.NoError(t, err)
	require.Len(t, byAddress.Results, 1)
	require.Equal(t, domain.ApplicationID("B1"), byAddress.Results[0].ID)

	wildcard, err := pgSQL.ApplicationDetailsPage(ctx, 1, 10, "%")
	require.NoError(t, err)
	require.Empty(t, wildcard.Results)
	require.Equal(t, 0, wildcard.Pagination.TotalPages)
}
