package main

import (
	"context"
	"database/sql"
	root "filplus"
	"filplus/internal/config"
	"filplus/pkg/logger"
	"filplus/pkg/storage/postgres"
	"io/fs"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand. It brings the
// application tables, the issue projection and the job queue up to date.
func migrateCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Applies pending database migrations",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			migrations, err := fs.Sub(root.Migrations, "migrations")
			if err != nil {
				logger.Fatal(ctx, "could not open embedded migrations", zap.Error(err))
			}

			if err := postgres.Migrate(ctx, strg.DB.(*sql.DB), migrations); err != nil {
				logger.Fatal(ctx, "could not migrate database", zap.Error(err))
			}
			logger.Info(ctx, "database is up to date")
		},
	}
}
