package log

import (
	"context"
	"io"

	"golang.org/x/exp/slog"
)

type contextKey struct{}

// Log configuration constants
const (
	LevelDebug = int(slog.LevelDebug) // debug level
	LevelInfo  = int(slog.LevelInfo)  // info level
	LevelWarn  = int(slog.LevelWarn)  // warning level
	LevelErr   = int(slog.LevelError) // error level

	OutputJSON = 1 // Log output will be json format
	OutputText = 2 // Log output will be text format
)

// NewContext returns a context with an injected logger configured with the
// given level and output format.
func NewContext(ctx context.Context, level, format int, w io.Writer) context.Context {
	l := slog.LevelVar{}
	l.Set(slog.Level(level))

	opts := slog.HandlerOptions{
		AddSource: false,
		Level:     &l,
	}
	if format == OutputJSON {
		return newContext(ctx, slog.New(slog.NewJSONHandler(w, &opts)))
	}
	return newContext(ctx, slog.New(slog.NewTextHandler(w, &opts)))
}

// With returns a context whose logger includes the extra attributes from args.
func With(ctx context.Context, args ...any) context.Context {
	return newContext(ctx, fromContext(ctx).With(args...))
}

// Debug logs a debug message using the context logger
func Debug(ctx context.Context, msg string, args ...any) {
	fromContext(ctx).Debug(msg, args...)
}

// Info logs an info message using the context logger
func Info(ctx context.Context, msg string, args ...any) {
	fromContext(ctx).Info(msg, args...)
}

// Warn logs a warning using the context logger
func Warn(ctx context.Context, msg string, args ...any) {
	fromContext(ctx).Warn(msg, args...)
}

// Error logs an error using the context logger. The error travels as an
// "err" attribute ahead of any extra args.
func Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append([]any{"err", err.Error()}, args...)
	}
	fromContext(ctx).Error(msg, args...)
}

func newContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func fromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
