package main

import (
	"context"
	"filplus/internal/config"
	"filplus/pkg/domain"
	"filplus/pkg/logger"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func reconcileCommand(cfg *config.Config) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Runs a single reconciliation tick, or reconciles one application with --id",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			gh := getGithub(cfg)
			commands := getCommandBus(ctx, cfg, strg, gh)
			rec := getReconciler(ctx, cfg, strg, gh, commands, nil)

			if id != "" {
				ctx = logger.WithFields(ctx, zap.String("applicationID", id))
				outcome, err := rec.ReconcileOne(ctx, domain.ApplicationID(id))
				if err != nil {
					logger.Fatal(ctx, "could not reconcile application", logger.Kind(err), zap.Error(err))
				}
				logger.Info(ctx, "application reconciled", zap.String("outcome", string(outcome)))

				return
			}

			result := rec.Tick(ctx)
			if result.Err != nil {
				logger.Fatal(ctx, "reconciliation tick failed", logger.Kind(result.Err), zap.Error(result.Err))
			}
			logger.Info(ctx, "reconciliation tick finished",
				zap.Any("outcomes", result.Outcomes),
				zap.Duration("duration", result.Duration))
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "ID of a single application to reconcile")

	return cmd
}
