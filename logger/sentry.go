package logger

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/getsentry/sentry-go"
)

// A SentryLogger logs through a SkipLogger and reports errors to Sentry.
type SentryLogger struct {
	l SkipLogger
}

// NewSentryLogger constructs a SentryLogger wrapping l.
//
// If Sentry cannot be initialized, NewSentryLogger logs why and returns l.
func NewSentryLogger(env string, l SkipLogger, dsn string) Logger {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:          dsn,
		Environment:  env,
		IgnoreErrors: []string{"write: broken pipe"},
	})
	if err != nil {
		l.Error(fmt.Sprintf("unable to init Sentry: %s", err), nil)
		return l
	}

	return &SentryLogger{l: l.AddSkip(1 + l.Skip())}
}

// Debug writes a debug log.
func (sl *SentryLogger) Debug(msg string, ctx *LogContext) { sl.l.Debug(msg, ctx) }

// Info writes an info log.
func (sl *SentryLogger) Info(msg string, ctx *LogContext) { sl.l.Info(msg, ctx) }

// Warn writes a warning log and sends it to Sentry.
func (sl *SentryLogger) Warn(msg string, ctx *LogContext) {
	if sl.l.LogLevel() > slog.LevelWarn {
		return
	}

	sl.l.Warn(msg, ctx)
	sl.send(sentry.LevelWarning, ctx)
}

// Error writes an error log and sends it to Sentry.
func (sl *SentryLogger) Error(msg string, ctx *LogContext) {
	if sl.l.LogLevel() > slog.LevelError {
		return
	}

	sl.l.Error(msg, ctx)
	sl.send(sentry.LevelError, ctx)
}

// Fatal writes a fatal log and sends it to Sentry.
func (sl *SentryLogger) Fatal(msg string, ctx *LogContext) {
	sl.l.Fatal(msg, ctx)
	sl.send(sentry.LevelFatal, ctx)
}

// LogLevel returns the level of the wrapped logger.
func (sl *SentryLogger) LogLevel() slog.Level { return sl.l.LogLevel() }

// Flush waits up to timeout for buffered events to reach Sentry.
func (sl *SentryLogger) Flush(timeout time.Duration) bool { return sentry.Flush(timeout) }

// send ships the LogContext.Error to Sentry,
// including any additional data from LogContext.
func (sl *SentryLogger) send(level sentry.Level, ctx *LogContext) {
	if ctx == nil || ctx.Error == nil {
		return
	}

	sentry.WithScope(func(scope *sentry.Scope) {
		if ctx.Request != nil {
			scope.SetRequest(ctx.Request)
		}

		if ctx.Data != nil {
			scope.SetContext("data", ctx.Data)
		}

		scope.SetLevel(level)
		sentry.CaptureException(ctx.Error)
	})
}
