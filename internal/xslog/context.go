package xslog

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// WithLogger stores logger in ctx for FromContext.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default.
func FromContext(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(ctxKey{}).(*slog.Logger)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// WithAttrs returns a ctx whose logger carries attrs on every record.
func WithAttrs(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}
	h := FromContext(ctx).Handler().WithAttrs(attrs)
	return WithLogger(ctx, slog.New(h))
}
