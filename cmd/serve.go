package main

import (
	"context"
	"errors"
	"filplus/internal/api"
	"filplus/internal/api/handler/v1handler"
	"filplus/internal/config"
	"filplus/internal/worker"
	"filplus/pkg/logger"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server, reconciliation loop and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			mp, closeMp := getMeterProvider(ctx)
			defer closeMp()

			gh := getGithub(cfg)
			commands := getCommandBus(ctx, cfg, strg, gh)
			rec := getReconciler(ctx, cfg, strg, gh, commands, mp)

			riverClient, err := worker.Start(ctx, strg.Pool, worker.Deps{
				Refresher:  rec,
				Dispatcher: commands,
			}, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			var wg sync.WaitGroup
			if cfg.Reconciler.Enabled {
				logger.Info(ctx, "starting reconciler...", zap.Duration("interval", cfg.Reconciler.Interval))
				wg.Go(func() { rec.Start(ctx) })
			}

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Dispatcher: commands,
					Queries:    strg,
				},
				MeterProvider: mp,
				Health:        strg,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}

			logger.Info(ctx, "waiting for reconciler...")
			wg.Wait()
		},
	}

	return cmd
}
