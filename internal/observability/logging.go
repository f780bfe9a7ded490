// Package observability carries per-build log context through a
// context.Context so every line logged for one build shares its identifiers.
package observability

import (
	"context"
	"log/slog"

	"git.home.luguber.info/inful/lumberlib/internal/logfields"
)

// LogContext holds structured logging context information.
type LogContext struct {
	BuildID  string
	Platform string
	Recipe   string
}

type logContextKeyType string

const logContextKey logContextKeyType = "log-context"

// WithBuildID adds a build ID to the context.
func WithBuildID(ctx context.Context, buildID string) context.Context {
	lc := extractLogContext(ctx)
	lc.BuildID = buildID
	return context.WithValue(ctx, logContextKey, lc)
}

// WithPlatform adds the resolved platform level label to the context.
func WithPlatform(ctx context.Context, label string) context.Context {
	lc := extractLogContext(ctx)
	lc.Platform = label
	return context.WithValue(ctx, logContextKey, lc)
}

// WithRecipe adds a recipe path to the context.
func WithRecipe(ctx context.Context, path string) context.Context {
	lc := extractLogContext(ctx)
	lc.Recipe = path
	return context.WithValue(ctx, logContextKey, lc)
}

func extractLogContext(ctx context.Context) LogContext {
	if ctx == nil {
		return LogContext{}
	}
	if lc, ok := ctx.Value(logContextKey).(LogContext); ok {
		return lc
	}
	return LogContext{}
}

// Attrs returns the set context values as slog attributes.
func Attrs(ctx context.Context) []slog.Attr {
	lc := extractLogContext(ctx)
	attrs := make([]slog.Attr, 0, 3)
	if lc.BuildID != "" {
		attrs = append(attrs, logfields.BuildID(lc.BuildID))
	}
	if lc.Platform != "" {
		attrs = append(attrs, logfields.Level(lc.Platform))
	}
	if lc.Recipe != "" {
		attrs = append(attrs, logfields.Path(lc.Recipe))
	}
	return attrs
}

// Logger returns base with the context's attributes attached.
func Logger(ctx context.Context, base *slog.Logger) *slog.Logger {
	if base == nil {
		base = slog.Default()
	}
	attrs := Attrs(ctx)
	if len(attrs) == 0 {
		return base
	}
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return base.With(args...)
}
