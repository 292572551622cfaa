package logging

import (
	"fmt"
	"log"

	"github.com/fatih/color"

	"github.com/mutagen-io/unixmode/pkg/unixmode"
)

// Logger is the main logger type. It has the novel property that it still
// functions if nil, but it doesn't log anything. It is designed to use the
// standard logger provided by the log package, so it respects any output and
// flags set for that logger. It is safe for concurrent usage.
type Logger struct {
	// level is the maximum level at which messages are logged.
	level Level
	// prefix is any prefix specified for the logger.
	prefix string
}

// NewLogger creates a new root logger that logs messages at or below the
// specified level. If debugging is enabled via the environment, the level is
// raised to at least LevelDebug.
func NewLogger(level Level) *Logger {
	if unixmode.DebugEnabled && level < LevelDebug {
		level = LevelDebug
	}
	return &Logger{level: level}
}

// Level returns the maximum level at which the logger logs messages. A nil
// logger reports LevelDisabled.
func (l *Logger) Level() Level {
	if l == nil {
		return LevelDisabled
	}
	return l.level
}

// Sublogger creates a new sublogger with the specified name.
func (l *Logger) Sublogger(name string) *Logger {
	// If the logger is nil, then the sublogger will be as well.
	if l == nil {
		return nil
	}

	// Compute the new prefix.
	prefix := name
	if l.prefix != "" {
		prefix = l.prefix + "." + name
	}

	// Create the new logger.
	return &Logger{
		level:  l.level,
		prefix: prefix,
	}
}

// enabled reports whether messages at the specified level should be logged.
func (l *Logger) enabled(level Level) bool {
	return l != nil && level <= l.level
}

// output is the internal logging method.
func (l *Logger) output(calldepth int, line string) {
	// Add a prefix if necessary.
	if l.prefix != "" {
		line = fmt.Sprintf("[%s] %s", l.prefix, line)
	}

	// Log.
	log.Output(calldepth, line)
}

// Info logs information with semantics equivalent to fmt.Print, but only if the
// logger's level is at least LevelInfo.
func (l *Logger) Info(v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.output(3, fmt.Sprint(v...))
	}
}

// Infof logs information with semantics equivalent to fmt.Printf, but only if
// the logger's level is at least LevelInfo.
func (l *Logger) Infof(format string, v ...interface{}) {
	if l.enabled(LevelInfo) {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Debug logs information with semantics equivalent to fmt.Print, but only if
// the logger's level is at least LevelDebug.
func (l *Logger) Debug(v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.output(3, fmt.Sprint(v...))
	}
}

// Debugf logs information with semantics equivalent to fmt.Printf, but only if
// the logger's level is at least LevelDebug.
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.enabled(LevelDebug) {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Tracef logs information with semantics equivalent to fmt.Printf, but only if
// the logger's level is at least LevelTrace.
func (l *Logger) Tracef(format string, v ...interface{}) {
	if l.enabled(LevelTrace) {
		l.output(3, fmt.Sprintf(format, v...))
	}
}

// Warn logs error information with a warning prefix and yellow color.
func (l *Logger) Warn(err error) {
	if l.enabled(LevelWarn) {
		l.output(3, color.YellowString("Warning: %v", err))
	}
}

// Error logs error information with an error prefix and red color.
func (l *Logger) Error(err error) {
	if l.enabled(LevelError) {
		l.output(3, color.RedString("Error: %v", err))
	}
}
