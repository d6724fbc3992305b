package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Logger is the module-wide logging surface. The construct protocol itself
// performs no I/O; logging happens at the registry and command boundary.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type zerologLogger struct {
	zl zerolog.Logger
}

// New builds a component-scoped logger. CONJURE_ENV=dev switches to the
// console writer, anything else emits JSON. CONJURE_LOG_LEVEL picks the
// level, defaulting to info.
func New(component string) Logger {
	return NewWithWriter(component, defaultWriter())
}

// NewWithLevel is New with an explicit level instead of the environment's.
func NewWithLevel(component string, level string) Logger {
	zl := zerolog.New(defaultWriter()).
		Level(parseLevel(level)).
		With().
		Timestamp().
		Str("component", component).
		Logger()
	return &zerologLogger{zl: zl}
}

func NewWithWriter(component string, out io.Writer) Logger {
	zl := zerolog.New(out).
		Level(parseLevel(os.Getenv("CONJURE_LOG_LEVEL"))).
		With().
		Timestamp().
		Str("component", component).
		Logger()
	return &zerologLogger{zl: zl}
}

func defaultWriter() io.Writer {
	if os.Getenv("CONJURE_ENV") == "dev" {
		return zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return os.Stderr
}

func parseLevel(raw string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
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

func (l *zerologLogger) Debugf(format string, args ...any) {
	l.zl.Debug().Msgf(format, args...)
}

func (l *zerologLogger) Infof(format string, args ...any) {
	l.zl.Info().Msgf(format, args...)
}

func (l *zerologLogger) Warnf(format string, args ...any) {
	l.zl.Warn().Msgf(format, args...)
}

func (l *zerologLogger) Errorf(format string, args ...any) {
	l.zl.Error().Msgf(format, args...)
}

type nopLogger struct{}

// Nop is the default logger for library consumers that opt out of logging.
func Nop() Logger {
	return nopLogger{}
}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Infof(string, ...any)  {}
func (nopLogger) Warnf(string, ...any)  {}
func (nopLogger) Errorf(string, ...any) {}
