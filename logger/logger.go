package logger

import (
	"context"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger, keeping the slog-style variadic
// key/value call shape the rest of the codebase already uses.
type Logger struct {
	zl zerolog.Logger
}

// New creates a new logger instance: JSON to stderr when it's not a
// terminal (container/CI logs), a colorized console writer when it
// is.
func New() *Logger {
	var w zerolog.ConsoleWriter
	var zl zerolog.Logger
	if isatty.IsTerminal(os.Stderr.Fd()) {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		zl = zerolog.New(w)
	} else {
		zl = zerolog.New(os.Stderr)
	}
	zl = zl.Level(getLogLevel()).With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// getLogLevel reads the LOG_LEVEL environment variable
func getLogLevel() zerolog.Level {
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// WithTag returns a new logger with a tag field attached to every
// subsequent log line.
func (l *Logger) WithTag(tag string) *Logger {
	return &Logger{zl: l.zl.With().Str("tag", tag).Logger()}
}

// WithTags returns a new logger with multiple fields attached.
func (l *Logger) WithTags(tags map[string]string) *Logger {
	ctx := l.zl.With()
	for k, v := range tags {
		ctx = ctx.Str(k, v)
	}
	return &Logger{zl: ctx.Logger()}
}

// withFields folds slog-style alternating key/value args onto ev.
func withFields(ev *zerolog.Event, args []any) *zerolog.Event {
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		ev = ev.Interface(key, args[i+1])
	}
	return ev
}

// Info logs an info level message with attributes
func (l *Logger) Info(msg string, args ...any) {
	withFields(l.zl.Info(), args).Msg(msg)
}

// Warn logs a warning level message with attributes
func (l *Logger) Warn(msg string, args ...any) {
	withFields(l.zl.Warn(), args).Msg(msg)
}

// Error logs an error level message with attributes
func (l *Logger) Error(msg string, args ...any) {
	withFields(l.zl.Error(), args).Msg(msg)
}

// Debug logs a debug level message with attributes
func (l *Logger) Debug(msg string, args ...any) {
	withFields(l.zl.Debug(), args).Msg(msg)
}

// InfoCtx logs an info level message, deriving a context-scoped
// logger the way zerolog's hlog middleware does.
func (l *Logger) InfoCtx(ctx context.Context, msg string, args ...any) {
	withFields(l.zl.Info().Ctx(ctx), args).Msg(msg)
}

// WarnCtx logs a warning level message with context
func (l *Logger) WarnCtx(ctx context.Context, msg string, args ...any) {
	withFields(l.zl.Warn().Ctx(ctx), args).Msg(msg)
}

// ErrorCtx logs an error level message with context
func (l *Logger) ErrorCtx(ctx context.Context, msg string, args ...any) {
	withFields(l.zl.Error().Ctx(ctx), args).Msg(msg)
}

// DebugCtx logs a debug level message with context
func (l *Logger) DebugCtx(ctx context.Context, msg string, args ...any) {
	withFields(l.zl.Debug().Ctx(ctx), args).Msg(msg)
}
