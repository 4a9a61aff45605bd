// Package logging provides structured logging configuration using log/slog.
//
// Request-scoped fields (chi's request id, the session id) travel in the
// context so every log entry of a request can be correlated.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey struct{}

// Setup configures the global slog logger based on level and format.
//
// Level values: "debug", "info", "warn", "error" (default: "info")
// Format values: "text", "json" (default: "text")
func Setup(level, format string) {
	slog.SetDefault(New(os.Stdout, level, format))
}

// New builds a logger writing to w with the given level and format.
func New(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// ParseLevel converts a string log level to slog.Level. Unknown values are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithContext returns a copy of ctx carrying additional log fields. Fields
// accumulate across calls.
//
//	ctx = logging.WithContext(ctx, "session_id", sess.ID)
func WithContext(ctx context.Context, args ...any) context.Context {
	prev, _ := ctx.Value(ctxKey{}).([]any)
	fields := make([]any, 0, len(prev)+len(args))
	fields = append(fields, prev...)
	fields = append(fields, args...)
	return context.WithValue(ctx, ctxKey{}, fields)
}

// FromContext returns the default logger enriched with the request id set
// by chi's RequestID middleware and any fields added by WithContext.
//
//	func handleRequest(w http.ResponseWriter, r *http.Request) {
//	    logger := logging.FromContext(r.Context())
//	    logger.Info("record saved", "tier", tier)
//	}
func FromContext(ctx context.Context) *slog.Logger {
	logger := slog.Default()

	if reqID := middleware.GetReqID(ctx); reqID != "" {
		logger = logger.With("request_id", reqID)
	}
	if fields, ok := ctx.Value(ctxKey{}).([]any); ok && len(fields) > 0 {
		logger = logger.With(fields...)
	}

	return logger
}
