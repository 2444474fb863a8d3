package logger

import (
	"fmt"
	"log"
	"log/slog"
	"os"
	"path"
	"regexp"
	"runtime"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

const knownFrames = 2

// LevelFatal sits above [log/slog.LevelError].
const LevelFatal = slog.Level(12)

var modulePathRegex = regexp.MustCompile("mediaspa/.*$")

// The Logger interface defines the levels a logging can occur at.
type Logger interface {
	Debug(msg string, ctx *LogContext)
	Error(msg string, ctx *LogContext)
	Fatal(msg string, ctx *LogContext)
	Info(msg string, ctx *LogContext)
	Warn(msg string, ctx *LogContext)

	LogLevel() slog.Level
}

// The SkipLogger interface defines a Logger that scrolls back
// the number of frames provided in order to ascertain the call site.
type SkipLogger interface {
	AddSkip(i int) SkipLogger
	Skip() int
	Logger
}

// LevelString formats lvl the way a ConsoleLogger prints it.
func LevelString(lvl slog.Level) string {
	if lvl >= LevelFatal {
		return "[FATAL]"
	}

	return "[" + lvl.String() + "]"
}

// ConsoleLogger implements Logger using [log].
type ConsoleLogger struct {
	colors map[slog.Level]*color.Color
	env    string
	l      *log.Logger
	level  slog.Level
	skip   int
}

// NewLogger constructs a ConsoleLogger.
//
// Logs are printed to os.Stdout by default, using the std lib log pkg.
// The default level is INFO.
// Colors are enabled when os.Stdout is a terminal.
func NewLogger(opts ...LoggerOptFn) *ConsoleLogger {
	fd := os.Stdout.Fd()
	l := &ConsoleLogger{
		colors: newColors(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)),
		env:    "DEVELOPMENT",
		l:      log.New(os.Stdout, "", log.LstdFlags),
		level:  slog.LevelInfo,
	}
	for _, opt := range opts {
		opt(l)
	}

	return l
}

func newColors(enabled bool) map[slog.Level]*color.Color {
	m := map[slog.Level]*color.Color{
		slog.LevelDebug: color.New(color.FgWhite),
		slog.LevelInfo:  color.New(color.FgBlue),
		slog.LevelWarn:  color.New(color.FgYellow),
		slog.LevelError: color.New(color.FgRed),
		LevelFatal:      color.New(color.FgMagenta),
	}
	for _, c := range m {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return m
}

// AddSkip replaces the current number of frames to scroll back
// when logging a message.
func (l *ConsoleLogger) AddSkip(i int) SkipLogger {
	newl := *l
	newl.skip = i
	return &newl
}

// Debug writes a debug log.
func (l *ConsoleLogger) Debug(msg string, ctx *LogContext) { l.log(slog.LevelDebug, msg, ctx) }

// Error writes an error log.
func (l *ConsoleLogger) Error(msg string, ctx *LogContext) { l.log(slog.LevelError, msg, ctx) }

// Fatal writes a fatal log. It does not exit.
func (l *ConsoleLogger) Fatal(msg string, ctx *LogContext) { l.log(LevelFatal, msg, ctx) }

// Info writes an info log.
func (l *ConsoleLogger) Info(msg string, ctx *LogContext) { l.log(slog.LevelInfo, msg, ctx) }

// Warn writes a warning log.
func (l *ConsoleLogger) Warn(msg string, ctx *LogContext) { l.log(slog.LevelWarn, msg, ctx) }

// LogLevel returns the level set for the ConsoleLogger.
func (l *ConsoleLogger) LogLevel() slog.Level { return l.level }

// Env returns the environment the ConsoleLogger reports for.
func (l *ConsoleLogger) Env() string { return l.env }

// Skip returns the current amount of frames to scroll back
// when logging a message.
func (l *ConsoleLogger) Skip() int { return l.skip }

// log prints msg, including any context if available.
func (l *ConsoleLogger) log(level slog.Level, msg string, ctx *LogContext) {
	if level < l.level {
		return
	}

	// NOTE: skip the frames in ConsoleLogger and however many it is configured with
	_, file, line, _ := runtime.Caller(knownFrames + l.skip)

	out := l.colors[level].Sprintf("%s %s:%d '%s'", LevelString(level), callSite(file), line, msg)
	if ctx == nil {
		l.l.Println(out)
		return
	}

	l.l.Println(out, "log_context:", ctx)
}

// callSite trims file down to its path within the module,
// or to its parent directory and name.
//
// e.g.,:
// /home/dev/my-project/main.go => my-project/main.go
func callSite(file string) string {
	if match := modulePathRegex.FindString(file); match != "" {
		return match[len("mediaspa/"):]
	}

	dir, name := path.Split(file)
	return fmt.Sprintf("%s/%s", path.Base(dir), name)
}
