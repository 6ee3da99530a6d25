package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// Logger writes leveled diagnostics and optional verbose timing lines. The zero
// value discards everything.
type Logger struct {
	base    *log.Logger
	Verbose bool
}

func New(writer io.Writer, verbose bool) Logger {
	base := log.NewWithOptions(writer, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.TimeOnly,
		Level:           log.InfoLevel,
	})
	if verbose {
		base.SetLevel(log.DebugLevel)
	}
	return Logger{base: base, Verbose: verbose}
}

func (l Logger) Infof(format string, args ...any) {
	if l.base == nil {
		return
	}
	l.base.Infof(format, args...)
}

func (l Logger) Warnf(format string, args ...any) {
	if l.base == nil {
		return
	}
	l.base.Warnf(format, args...)
}

func (l Logger) Errorf(format string, args ...any) {
	if l.base == nil {
		return
	}
	l.base.Errorf(format, args...)
}

func (l Logger) Verbosef(format string, args ...any) {
	if !l.Verbose || l.base == nil {
		return
	}
	l.base.Debugf(format, args...)
}

// Measure returns a stop function that logs the elapsed time when called.
func (l Logger) Measure(label string) func() {
	if !l.Verbose {
		return func() {}
	}
	start := time.Now()
	return func() {
		elapsed := time.Since(start).Round(time.Millisecond)
		l.Verbosef("%s took %s", label, elapsed)
	}
}
