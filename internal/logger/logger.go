package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configure a Logger.
type Options struct {
	// Level is a zerolog level name; empty means info.
	Level string
	// HumanReadable switches from JSON lines to the console writer.
	HumanReadable bool
	// Writer defaults to stderr; the playground owns stdout while running.
	Writer io.Writer
	// Component, when set, tags every entry.
	Component string
}

// Logger is the zerolog handle shared by the widgets, the playground and
// the CLI. A nil *Logger discards everything.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger from opts.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	if opts.HumanReadable {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	ctx := zerolog.New(out).Level(level).With().Timestamp()
	if opts.Component != "" {
		ctx = ctx.Str("component", opts.Component)
	}
	return &Logger{zl: ctx.Logger()}, nil
}

func parseLevel(name string) (zerolog.Level, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q: %w", name, err)
	}
	return level, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WithFields returns a child logger carrying fields on every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Fields(fields).Logger()}
}

// WithWidget tags every entry with the widget it concerns.
func (l *Logger) WithWidget(kind, id string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{zl: l.zl.With().Str("widget", id).Str("kind", kind).Logger()}
}

// DebugEnabled reports whether debug entries are written, so callers can
// skip building fields.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.zl.GetLevel() <= zerolog.DebugLevel
}

// Input records a key press or click and whether a binding consumed it.
func (l *Logger) Input(kind, name string, handled bool) {
	if !l.DebugEnabled() {
		return
	}
	l.zl.Debug().Str("input", name).Bool("handled", handled).Msg(kind)
}

// Debug writes a debug entry.
func (l *Logger) Debug(msg string) { l.write(zerolog.DebugLevel, msg) }

// Info writes an info entry.
func (l *Logger) Info(msg string) { l.write(zerolog.InfoLevel, msg) }

// Warn writes a warning entry.
func (l *Logger) Warn(msg string) { l.write(zerolog.WarnLevel, msg) }

// Error writes an error entry carrying err when it is not nil.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	e := l.zl.Error()
	if err != nil {
		e = e.Err(err)
	}
	e.Msg(msg)
}

func (l *Logger) write(level zerolog.Level, msg string) {
	if l == nil {
		return
	}
	l.zl.WithLevel(level).Msg(msg)
}
