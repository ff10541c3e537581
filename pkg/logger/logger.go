// Package logger provides a structured logging facility using zap logger.
// Loggers travel in context.Context so request and job scoped fields (request
// id, application id, job id) are attached once and reused by every call.
package logger

import (
	"context"
	"filplus/pkg/serrors"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// DevelopmentEnvironment represents the development environment setting.
	// The logger writes human-readable console output at debug level with
	// stack traces on warnings.
	DevelopmentEnvironment = "development"

	// ProductionEnvironment represents the production environment setting.
	// The logger writes sampled JSON at info level.
	ProductionEnvironment = "production"
)

// defaultLogger is the package-level logger instance used when no logger is found in context.
var defaultLogger = zap.NewNop() //nolint: gochecknoglobals

// Setup initializes the default logger for the given environment.
//
// Parameters:
//   - environment: DevelopmentEnvironment or ProductionEnvironment. Anything
//     else is treated as development.
//   - level: a zap level name ("debug", "info", "warn", ...) overriding the
//     environment's default. Empty keeps the default.
//
// It returns an error for an unknown level or when zap cannot build the
// logger; the previous default logger is kept in that case.
func Setup(environment string, level string) error {
	cfg := zap.NewDevelopmentConfig()
	if environment == ProductionEnvironment {
		cfg = zap.NewProductionConfig()
	}

	if level != "" {
		lvl, err := zapcore.ParseLevel(level)
		if err != nil {
			return fmt.Errorf("could not parse log level: %w", err)
		}
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	l, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("could not build logger: %w", err)
	}
	defaultLogger = l

	return nil
}

// key is the context key under which the logger is stored.
type key struct{}

// Get retrieves a logger from the provided context.
// If no logger is found in the context, it returns the default logger.
func Get(ctx context.Context) *zap.Logger {
	if logger, _ := ctx.Value(key{}).(*zap.Logger); logger != nil {
		return logger
	}

	return defaultLogger
}

// WithLogger creates a new context with the provided logger attached. Every
// helper of this package called with the returned context logs through it.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, key{}, logger)
}

// WithFields creates a new context with a logger that includes the specified
// fields. Request handlers, jobs and reconciler workers use it to tag every
// line they log with the request, job or application ID.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Get(ctx).With(fields...))
}

// IsDebug checks if the logger in the context is configured at debug level.
func IsDebug(ctx context.Context) bool {
	return Get(ctx).Level() == zap.DebugLevel
}

// Kind returns a field naming the semantic kind of err, so operators can tell
// failures that heal on the next tick from ones that need intervention.
func Kind(err error) zap.Field {
	k := serrors.KindOf(err)
	if k == nil {
		return zap.Skip()
	}

	return zap.String("kind", k.Error())
}

// Debug logs a message at debug level with the given fields.
func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Debug(msg, fields...)
}

// Info logs a message at info level with the given fields.
func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Info(msg, fields...)
}

// Warn logs a message at warn level with the given fields.
func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Warn(msg, fields...)
}

// Error logs a message at error level with the given fields.
func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Error(msg, fields...)
}

// Fatal logs a message at fatal level with the given fields.
func Fatal(ctx context.Context, msg string, fields ...zapcore.Field) {
	Get(ctx).Fatal(msg, fields...)
}
