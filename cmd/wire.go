package main

import (
	"context"
	"filplus/internal/application"
	"filplus/internal/commandbus"
	"filplus/internal/config"
	"filplus/internal/eventbus"
	"filplus/internal/reconciler"
	"filplus/pkg/github"
	"filplus/pkg/github/githubrest"
	"filplus/pkg/logger"
	"filplus/pkg/metrics"
	"filplus/pkg/storage/postgres"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/zap"
)

// getPostgres creates a PostgreSQL client using configuration values and returns it
// along with a cleanup function to close the connection pool.
func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	pgsql, err := postgres.New(ctx, postgres.Options{
		Username:           cfg.Database.Username,
		Password:           cfg.Database.Password,
		Host:               cfg.Database.Host,
		Port:               cfg.Database.Port,
		Database:           cfg.Database.DatabaseName,
		ConnMaxLifetime:    cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime:    cfg.Database.ConnMaxIdleTime,
		MaxOpenConnections: cfg.Database.MaxOpenConnections,
		MaxIdleConnections: cfg.Database.MaxIdleConnections,
		SslMode:            cfg.Database.SslMode,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create postgres storage", zap.Error(err))
	}

	return pgsql, func() {
		logger.Info(ctx, "closing postgres client...")
		if err = pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres connection", zap.Error(err))
		}
	}
}

// getGithub creates the GitHub client shared by command handlers and the
// reconciler. Every request goes through a single rate limiter.
func getGithub(cfg *config.Config) *githubrest.Client {
	return githubrest.New(
		&http.Client{Timeout: cfg.GitHub.Timeout},
		github.NewLimiter(cfg.GitHub.RateLimitMaxWait),
		githubrest.Options{
			BaseURL:   cfg.GitHub.BaseURL,
			Token:     cfg.GitHub.Token,
			UserAgent: cfg.GitHub.UserAgent,
		})
}

// getMeterProvider creates the OpenTelemetry meter provider exported on the
// Prometheus default registry.
func getMeterProvider(ctx context.Context) (*sdkmetric.MeterProvider, func()) {
	mp, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}

	return mp, func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
		}
	}
}

// getCommandBus wires the command handlers and event projectors onto fresh
// buses. A registration defect is fatal.
func getCommandBus(ctx context.Context,
	cfg *config.Config,
	strg *postgres.PgSQL,
	gh github.Client) *commandbus.Bus {
	opts := application.NewOptions(cfg)

	events := eventbus.New()
	commands := commandbus.New(events)
	if err := application.Register(commands, events,
		application.New(strg, gh, opts),
		application.NewProjections(strg, opts)); err != nil {
		logger.Fatal(ctx, "could not register handlers", logger.Kind(err), zap.Error(err))
	}

	return commands
}

// getReconciler creates the reconciliation loop reading allocator files
// through gh and dispatching edits on commands.
func getReconciler(ctx context.Context,
	cfg *config.Config,
	strg *postgres.PgSQL,
	gh github.Client,
	commands commandbus.Dispatcher,
	mp *sdkmetric.MeterProvider) *reconciler.Reconciler {
	var m *reconciler.Metrics
	if mp != nil {
		var err error
		if m, err = reconciler.NewMetrics(mp); err != nil {
			logger.Fatal(ctx, "could not create reconciler metrics", zap.Error(err))
		}
	}

	return reconciler.New(strg,
		reconciler.NewPullRequestReader(gh, application.NewOptions(cfg)),
		commands,
		m,
		reconciler.NewOptions(cfg))
}
