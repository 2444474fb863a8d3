package logger

import (
	"log"
	"log/slog"
)

// A LoggerOptFn is a functional option configuring a ConsoleLogger when constructing a new one.
type LoggerOptFn func(*ConsoleLogger)

// WithColor forces colors on or off.
func WithColor(enabled bool) LoggerOptFn {
	return func(l *ConsoleLogger) {
		l.colors = newColors(enabled)
	}
}

// WithEnv sets the environment ConsoleLogger is operating in.
func WithEnv(env string) LoggerOptFn {
	return func(l *ConsoleLogger) {
		l.env = env
	}
}

// WithLevel sets the minimum level ConsoleLogger emits.
func WithLevel(level slog.Level) LoggerOptFn {
	return func(l *ConsoleLogger) {
		l.level = level
	}
}

// WithLogger sets the log.Logger ConsoleLogger uses.
func WithLogger(log *log.Logger) LoggerOptFn {
	return func(l *ConsoleLogger) {
		l.l = log
	}
}

// WithSkip sets the number of frames in the call stack
// to skip in order to log the desired file and line number
// of the calling code.
func WithSkip(skip int) LoggerOptFn {
	return func(l *ConsoleLogger) {
		l.skip = skip
	}
}
