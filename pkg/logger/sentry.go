package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig configures error forwarding to Sentry.
type SentryConfig struct {
	DSN         string
	Environment string
	// MinLevel determines which levels are forwarded as Sentry logs
	// (errors always become Issues).
	MinLevel slog.Level
}

// NewWithSentry creates a logger writing to stdout and forwarding to
// Sentry. An empty DSN or a failed Sentry init falls back to
// stdout-only, so the same construction path is safe in development.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	stdout := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if cfg.DSN == "" {
		return slog.New(newExtractorHandler(stdout, extractors...))
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	}); err != nil {
		slog.New(stdout).Error("sentry init failed", slog.String("error", err.Error()))
		return slog.New(newExtractorHandler(stdout, extractors...))
	}

	logLevel := []slog.Level{slog.LevelWarn, slog.LevelError}
	if cfg.MinLevel == slog.LevelError {
		logLevel = []slog.Level{slog.LevelError}
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   logLevel,
	}.NewSentryHandler(context.Background())

	return slog.New(newExtractorHandler(newMultiHandler(stdout, sentryHandler), extractors...))
}
