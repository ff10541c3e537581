package logger_test

import (
	"context"
	"errors"
	"filplus/pkg/logger"
	"filplus/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantErr     bool
	}{
		{name: "development", environment: logger.DevelopmentEnvironment},
		{name: "production", environment: logger.ProductionEnvironment},
		{name: "explicit level", environment: logger.ProductionEnvironment, level: "warn"},
		{name: "invalid level", environment: logger.DevelopmentEnvironment, level: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should return default logger when context has no logger")

	customLogger, _ := zap.NewDevelopment()
	require.Equal(t, customLogger, logger.Get(logger.WithLogger(ctx, customLogger)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("applicationID", "A1"))
	logger.Info(ctx, "processed")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "A1", entries[0].ContextMap()["applicationID"])
}

func TestIsDebug(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	ctx := context.Background()
	require.True(t, logger.IsDebug(ctx), "development logger should be at debug level")

	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, "info"))
	require.False(t, logger.IsDebug(ctx))
}

func TestKind(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Warn(ctx, "read failed", logger.Kind(serrors.With(serrors.ErrRateLimited, "slow down")))
	logger.Warn(ctx, "dispatch failed", logger.Kind(errors.New("boom")))
	logger.Info(ctx, "no error", logger.Kind(nil))

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, "RATE_LIMITED", entries[0].ContextMap()["kind"])
	require.Equal(t, "INTERNAL", entries[1].ContextMap()["kind"])
	require.NotContains(t, entries[2].ContextMap(), "kind")
}

func TestLoggingFunctions(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug message", zap.String("key", "value"))
		logger.Info(ctx, "info message", zap.String("key", "value"))
		logger.Warn(ctx, "warn message", zap.String("key", "value"))
		logger.Error(ctx, "error message", zap.String("key", "value"))
	})
}
