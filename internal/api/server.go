// Package api configures and exposes the HTTP server, routes, metrics,
// profiling and related middleware of the filplus service.
package api

import (
	"context"
	"filplus/internal/api/handler/v1handler"
	"filplus/internal/config"
	"filplus/pkg/controller"
	"filplus/pkg/logger"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// V1 configures pagination of the v1 API.
	V1 v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSOrigins lists the origins allowed to call the API.
	CORSOrigins []string
	// Profiling mounts pprof endpoints under /debug.
	Profiling bool
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		V1: v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
		Profiling:         cfg.HTTP.Profiling,
	}
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	v1handler.Deps

	// MeterProvider records HTTP metrics. Nil disables them.
	MeterProvider metric.MeterProvider
	// Health is pinged by the health endpoint. Nil always reports healthy.
	Health Pinger
}

// NewHandler builds the root handler of the server:
// - Prometheus metrics endpoint (MetricsPath)
// - health endpoint (/healthz)
// - v1 API routes under /v1
// - pprof endpoints under /debug when profiling is enabled
// Every route is wrapped with recovery, CORS, logging and metrics middlewares.
func NewHandler(deps Deps, opts Options) (http.Handler, error) {
	withMetrics, err := controller.WithMetrics(deps.MeterProvider)
	if err != nil {
		return nil, fmt.Errorf("could not create http metrics: %w", err)
	}

	r := chi.NewRouter()
	r.Use(
		controller.WithLogger,
		middleware.Recoverer,
		controller.WithCORS(opts.CORSOrigins),
		withMetrics,
	)

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.Handler())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if deps.Health != nil {
			if err := deps.Health.Ping(r.Context()); err != nil {
				logger.Warn(r.Context(), "health check failed", zap.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(`{"status":"unavailable"}`))

				return
			}
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// v1 api
	r.Mount("/v1", v1handler.New(deps.Deps, opts.V1).Routes())

	// pprof
	if opts.Profiling {
		r.Mount("/debug", middleware.Profiler())
	}

	return r, nil
}

// NewServer wires up and returns a configured *http.Server using the provided
// Options. The handler is wrapped with a global request timeout.
func NewServer(deps Deps, opts Options) (*http.Server, error) {
	handler, err := NewHandler(deps, opts)
	if err != nil {
		return nil, err
	}
	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
