package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

type ctxKey struct{}

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	return rec
}

func TestExtractorHandler(t *testing.T) {
	t.Parallel()

	t.Run("injects context attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		extractor := func(ctx context.Context) (slog.Attr, bool) {
			if v, ok := ctx.Value(ctxKey{}).(string); ok {
				return slog.String("request_id", v), true
			}
			return slog.Attr{}, false
		}
		log := slog.New(newExtractorHandler(slog.NewJSONHandler(&buf, nil), extractor))

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "hello")

		rec := decodeRecord(t, &buf)
		require.Equal(t, "req-1", rec["request_id"])
	})

	t.Run("skips declined extractors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		extractor := func(ctx context.Context) (slog.Attr, bool) {
			return slog.Attr{}, false
		}
		log := slog.New(newExtractorHandler(slog.NewJSONHandler(&buf, nil), extractor))

		log.Info("hello")

		rec := decodeRecord(t, &buf)
		require.NotContains(t, rec, "request_id")
	})

	t.Run("nil extractors are dropped", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := slog.New(newExtractorHandler(slog.NewJSONHandler(&buf, nil), nil))

		require.NotPanics(t, func() { log.Info("hello") })
	})
}

func TestMultiHandler(t *testing.T) {
	t.Parallel()

	t.Run("fans out to every enabled handler", func(t *testing.T) {
		t.Parallel()

		var a, b bytes.Buffer
		log := slog.New(newMultiHandler(
			slog.NewJSONHandler(&a, nil),
			slog.NewJSONHandler(&b, nil),
		))

		log.Info("hello")

		require.Contains(t, a.String(), "hello")
		require.Contains(t, b.String(), "hello")
	})

	t.Run("respects per-handler levels", func(t *testing.T) {
		t.Parallel()

		var info, warnOnly bytes.Buffer
		log := slog.New(newMultiHandler(
			slog.NewJSONHandler(&info, nil),
			slog.NewJSONHandler(&warnOnly, &slog.HandlerOptions{Level: slog.LevelWarn}),
		))

		log.Info("routine")

		require.Contains(t, info.String(), "routine")
		require.Empty(t, warnOnly.String())
	})
}

func TestNewDiscard(t *testing.T) {
	t.Parallel()

	log := NewDiscard()
	require.NotPanics(t, func() {
		log.Info("dropped", slog.String("k", "v"))
	})
}
