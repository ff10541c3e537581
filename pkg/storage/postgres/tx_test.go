package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"filplus/pkg/domain"
	"filplus/pkg/storage"
	"filplus/pkg/storage/postgres"
	"testing"

	"github.com/stretchr/testify/require"
)

func testApplication(id string) domain.Application {
	return domain.Application{
		ID:      domain.ApplicationID(id),
		Number:  7,
		Name:    "Tx Allocator " + id,
		Address: "f1tx",
		Status:  domain.ApplicationStatusKYC,
	}
}

func requireStored(t *testing.T, s storage.ApplicationStorage, id string, stored bool) {
	t.Helper()

	app, err := s.ApplicationByID(context.Background(), domain.ApplicationID(id))
	require.NoError(t, err)
	if stored {
		require.NotNil(t, app)
	} else {
		require.Nil(t, app)
	}
}

func TestPgSQL_Transactions(t *testing.T) {
	t.Parallel()

	pgSQL := setupTestDB(t)
	ctx := context.Background()

	t.Run("handles outside a transaction", func(t *testing.T) {
		require.ErrorIs(t, pgSQL.Commit(), storage.ErrNotInTx)
		require.ErrorIs(t, pgSQL.Rollback(), storage.ErrNotInTx)
	})

	t.Run("begin is not reentrant", func(t *testing.T) {
		tx, err := pgSQL.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback() }()

		inner, ok := tx.(*postgres.PgSQL)
		require.True(t, ok)
		require.IsType(t, &sql.Tx{}, inner.DB)
		require.Same(t, pgSQL.Pool, inner.Pool)

		_, err = inner.Begin(ctx)
		require.ErrorIs(t, err, storage.ErrAlreadyInTx)
	})

	t.Run("commit publishes writes", func(t *testing.T) {
		tx, err := pgSQL.Begin(ctx)
		require.NoError(t, err)

		_, err = tx.StoreApplication(ctx, testApplication("tx-commit"))
		require.NoError(t, err)
		requireStored(t, tx, "tx-commit", true)
		requireStored(t, pgSQL, "tx-commit", false)

		require.NoError(t, tx.Commit())
		requireStored(t, pgSQL, "tx-commit", true)
	})

	t.Run("rollback discards writes", func(t *testing.T) {
		tx, err := pgSQL.Begin(ctx)
		require.NoError(t, err)

		_, err = tx.StoreApplication(ctx, testApplication("tx-rollback"))
		require.NoError(t, err)

		require.NoError(t, tx.Rollback())
		requireStored(t, pgSQL, "tx-rollback", false)
	})

	t.Run("WithTx commits on success", func(t *testing.T) {
		err := pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.StoreApplication(ctx, testApplication("with-tx-ok"))

			return err //nolint: wrapcheck
		})
		require.NoError(t, err)
		requireStored(t, pgSQL, "with-tx-ok", true)
	})

	t.Run("WithTx rolls back on error", func(t *testing.T) {
		boom := errors.New("boom")
		err := pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.StoreApplication(ctx, testApplication("with-tx-err"))
			require.NoError(t, err)

			return boom
		})
		require.ErrorIs(t, err, boom)
		requireStored(t, pgSQL, "with-tx-err", false)
	})

	t.Run("WithTx rolls back on panic", func(t *testing.T) {
		require.PanicsWithValue(t, "boom", func() {
			_ = pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
				_, err := s.StoreApplication(ctx, testApplication("with-tx-panic"))
				require.NoError(t, err)

				panic("boom")
			})
		})
		requireStored(t, pgSQL, "with-tx-panic", false)
	})

	t.Run("WithTx surfaces conflicts", func(t *testing.T) {
		err := pgSQL.WithTx(ctx, func(s storage.AllStorage) error {
			_, err := s.StoreApplication(ctx, testApplication("tx-commit"))

			return err //nolint: wrapcheck
		})
		require.Error(t, err)
	})
}
