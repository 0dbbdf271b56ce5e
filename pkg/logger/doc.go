// Package logger provides structured logging for the SDK on top of
// log/slog: a JSON stdout factory, context-derived attribute
// injection, and optional Sentry forwarding with graceful fallback
// when no DSN is configured.
//
// Context extractors run on every log call:
//
//	requestID := func(ctx context.Context) (slog.Attr, bool) {
//	    if v, ok := ctx.Value(ctxKey{}).(string); ok && v != "" {
//	        return slog.String("request_id", v), true
//	    }
//	    return slog.Attr{}, false
//	}
//	log := logger.New(requestID)
package logger
