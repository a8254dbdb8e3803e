package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the level and output format. Writer defaults to stderr.
type Options struct {
	Level         string
	HumanReadable bool // console lines instead of JSON
	Writer        io.Writer
}

// Logger is the clock's log sink. A nil *Logger drops everything, so
// packages can take one as an optional dependency.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger from opts. An empty level means info.
func New(opts Options) (*Logger, error) {
	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	zl := zerolog.New(output(opts)).Level(level).With().Timestamp().Logger()
	return &Logger{zl: zl}, nil
}

func output(opts Options) io.Writer {
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if !opts.HumanReadable {
		return w
	}
	console := zerolog.NewConsoleWriter()
	console.Out = w
	console.TimeFormat = time.TimeOnly
	return console
}

// Nop discards all output.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WithFields returns a child logger carrying fields on every entry.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	ctx := l.zl.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &Logger{zl: ctx.Logger()}
}

func (l *Logger) Info(msg string) {
	if l != nil {
		l.zl.Info().Msg(msg)
	}
}

func (l *Logger) Debug(msg string) {
	if l != nil {
		l.zl.Debug().Msg(msg)
	}
}

// Warn logs msg at warn level with err attached when non-nil.
func (l *Logger) Warn(err error, msg string) {
	if l != nil {
		withErr(l.zl.Warn(), err).Msg(msg)
	}
}

// Error logs msg at error level with err attached when non-nil.
func (l *Logger) Error(err error, msg string) {
	if l != nil {
		withErr(l.zl.Error(), err).Msg(msg)
	}
}

func withErr(e *zerolog.Event, err error) *zerolog.Event {
	if err != nil {
		return e.Err(err)
	}
	return e
}
