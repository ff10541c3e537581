package main

import (
	"context"
	"filplus/internal/application"
	"filplus/internal/commandbus"
	"filplus/internal/config"
	"filplus/pkg/logger"
	"filplus/pkg/storage"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func syncIssuesCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync-issues",
		Short: "Synchronizes application issues of the registry into the issue details",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			commands := getCommandBus(ctx, cfg, strg, getGithub(cfg))

			res, err := commandbus.Send[storage.BulkResult](ctx, commands, application.SyncIssues{})
			if err != nil {
				logger.Fatal(ctx, "could not sync issues", logger.Kind(err), zap.Error(err))
			}
			logger.Info(ctx, "issues synchronized",
				zap.Int("inserted", res.Inserted),
				zap.Int("updated", res.Updated))
		},
	}

	return cmd
}
