package postgres_test

import (
	"context"
	"database/sql"
	"filplus"
	"filplus/pkg/storage/postgres"
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "filplus"
	testPassword = "filplus"
	testDB       = "filplus_test"
)

// startPostgres runs a throwaway postgres container and returns its address.
// The container is terminated when the test finishes.
func startPostgres(t *testing.T) (string, int) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
				"POSTGRES_DB":       testDB,
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return host, port.Int()
}

// setupTestDB returns a migrated storage handle on a fresh database.
func setupTestDB(t *testing.T) *postgres.PgSQL {
	t.Helper()

	host, port := startPostgres(t)
	pgSQL, err := postgres.New(context.Background(), postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               host,
		Port:               port,
		Database:           testDB,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 2,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pgSQL.Close()
	})

	migrations, err := fs.Sub(filplus.Migrations, "migrations")
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(t.Context(), pgSQL.DB.(*sql.DB), migrations))

	return pgSQL
}

func TestPgSQL_PingAndMigrateIsIdempotent(t *testing.T) {
	pgSQL := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, pgSQL.Ping(ctx))

	migrations, err := fs.Sub(filplus.Migrations, "migrations")
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(ctx, pgSQL.DB.(*sql.DB), migrations))
}
