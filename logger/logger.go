// SPDX-License-Identifier: GPL-3.0-or-later

package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
)

var isTerminal = isatty.IsTerminal(os.Stderr.Fd())

// New creates a new Logger writing to stderr. A colored terminal handler
// is used when stderr is attached to a terminal, a plain text handler
// otherwise.
func New() *Logger {
	if isTerminal {
		return &Logger{sl: slog.New(withCallDepth(1, newTerminalHandler()))}
	}
	return &Logger{sl: slog.New(withCallDepth(1, newTextHandler()))}
}

// Logger is a wrapper around slog.Logger. The zero value and the nil
// pointer are usable and log via a default logger.
type Logger struct {
	sl *slog.Logger
}

func (l *Logger) Error(a ...any)                 { l.log(slog.LevelError, fmt.Sprint(a...)) }
func (l *Logger) Warning(a ...any)               { l.log(slog.LevelWarn, fmt.Sprint(a...)) }
func (l *Logger) Info(a ...any)                  { l.log(slog.LevelInfo, fmt.Sprint(a...)) }
func (l *Logger) Debug(a ...any)                 { l.log(slog.LevelDebug, fmt.Sprint(a...)) }
func (l *Logger) Errorf(format string, a ...any) { l.log(slog.LevelError, fmt.Sprintf(format, a...)) }
func (l *Logger) Warningf(format string, a ...any) {
	l.log(slog.LevelWarn, fmt.Sprintf(format, a...))
}
func (l *Logger) Infof(format string, a ...any)  { l.log(slog.LevelInfo, fmt.Sprintf(format, a...)) }
func (l *Logger) Debugf(format string, a ...any) { l.log(slog.LevelDebug, fmt.Sprintf(format, a...)) }

// With returns a Logger that includes the given attributes in each output
// operation.
func (l *Logger) With(args ...any) *Logger {
	if l.isNil() {
		logger := New()
		logger.sl = logger.sl.With(args...)
		return logger
	}

	return &Logger{sl: l.sl.With(args...)}
}

func (l *Logger) log(level slog.Level, msg string) {
	if l.isNil() {
		defaultLogger.sl.Log(context.Background(), level, msg)
		return
	}

	l.sl.Log(context.Background(), level, msg)
}

func (l *Logger) isNil() bool { return l == nil || l.sl == nil }

var defaultLogger = New()
