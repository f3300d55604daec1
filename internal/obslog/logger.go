// Package obslog provides healbatch's structured logging, grounded on
// jhkimqd-chaos-utils/pkg/reporting's zerolog-backed Logger: the same
// LoggerConfig{Level,Format,Output} shape and console-vs-json writer
// selection, renamed to this program's domain and trimmed to the
// level/format surface healbatch's CLI actually exposes.
package obslog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Level is a logging severity.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// Format is a log line rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Config selects a Logger's level, format, and destination.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
}

// Logger wraps zerolog.Logger with the key-value call shape obslog's
// callers use throughout the CLI.
type Logger struct {
	z zerolog.Logger
}

// New builds a Logger from cfg. A nil Output defaults to os.Stderr, so log
// lines never interleave with a command's serialized stdout output.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	var out io.Writer = cfg.Output
	if cfg.Format == FormatText {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: time.RFC3339, NoColor: true}
	}

	z := zerolog.New(out).With().Timestamp().Logger()
	switch cfg.Level {
	case LevelDebug:
		z = z.Level(zerolog.DebugLevel)
	case LevelWarn:
		z = z.Level(zerolog.WarnLevel)
	case LevelError:
		z = z.Level(zerolog.ErrorLevel)
	default:
		z = z.Level(zerolog.InfoLevel)
	}
	return &Logger{z: z}
}

func (l *Logger) event(e *zerolog.Event, msg string, fields ...interface{}) {
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		e = e.Interface(key, fields[i+1])
	}
	e.Msg(msg)
}

// Debug logs msg at debug level with alternating key/value fields.
func (l *Logger) Debug(msg string, fields ...interface{}) { l.event(l.z.Debug(), msg, fields...) }

// Info logs msg at info level with alternating key/value fields.
func (l *Logger) Info(msg string, fields ...interface{}) { l.event(l.z.Info(), msg, fields...) }

// Warn logs msg at warn level with alternating key/value fields.
func (l *Logger) Warn(msg string, fields ...interface{}) { l.event(l.z.Warn(), msg, fields...) }

// Error logs msg at error level with alternating key/value fields.
func (l *Logger) Error(msg string, fields ...interface{}) { l.event(l.z.Error(), msg, fields...) }
