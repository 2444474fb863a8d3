/*
Package logger provides application logging by defining the required behavior in [Logger]
and providing an implementation of it with [ConsoleLogger].

# Overview

A [Logger] outputs messages at levels of importance, expressed as [log/slog.Level]s.
An implementation may be initialized at a level and only emit messages at or above it.
For example, a [ConsoleLogger] set to [log/slog.LevelWarn]
only emits through Warn, Error, and Fatal.

# ConsoleLogger

Log messages emitted by [ConsoleLogger] are composed of a few parts:
  - timestamp
  - log level
  - call site
  - message
  - log context

Here's an example:

	2026/10/18 15:55:21 [INFO] http/router/router.go:97 'serving entry page' log_context: {"data":{"route":"video"}}

The log context is a JSON-encoded [*LogContext].
It carries data inessential to the message proper that gives a fuller picture of the state at the time of logging.

Colors are used only when writing to a terminal.

# SentryLogger

When a Sentry DSN is configured, [NewSentryLogger] wraps a Logger
and ships every Warn, Error or Fatal carrying a [LogContext.Error] to Sentry.
*/
package logger
