package postgres

import (
	"context"
	"database/sql"
	"filplus/pkg/logger"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"go.uber.org/zap"
)

// Migrate applies the goose SQL migrations found at the root of migrations,
// then brings the River queue tables to their latest version.
func Migrate(ctx context.Context, db *sql.DB, migrations fs.FS) error {
	if err := migrateSchema(ctx, db, migrations); err != nil {
		return err
	}

	return migrateQueue(ctx, db)
}

func migrateSchema(ctx context.Context, db *sql.DB, migrations fs.FS) error {
	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return fmt.Errorf("could not create goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("could not apply schema migrations: %w", err)
	}
	for _, res := range results {
		logger.Info(ctx, "schema migration applied",
			zap.Int64("version", res.Source.Version),
			zap.Duration("duration", res.Duration))
	}

	return nil
}

func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not apply river migrations: %w", err)
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "river migration applied", zap.Int("version", v.Version))
	}

	return nil
}
