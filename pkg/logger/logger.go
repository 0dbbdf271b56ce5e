package logger

import (
	"io"
	"log/slog"
	"os"
)

// New creates a JSON logger writing to stdout with the given context
// extractors applied to every record.
func New(extractors ...ContextExtractor) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(newExtractorHandler(handler, extractors...))
}

// NewDiscard creates a logger that drops everything. Used as the
// default when no logger is configured.
func NewDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
