package modemlog

import (
	"fmt"
	"io"

	"github.com/hyp3rd/ewrap"
)

// std is the process-wide logger: stderr at InfoLevel, plain records.
//
//nolint:gochecknoglobals // One shared process-wide log is the point of the package.
var std = newStd()

func newStd() *Logger {
	logger, err := New(DefaultConfig())
	if err != nil {
		// DefaultConfig is always valid.
		panic(err)
	}

	return logger
}

// Default returns the package-level logger used by the top-level
// functions.
func Default() *Logger {
	return std
}

// SetLevel adjusts the package-level logger's threshold and returns the
// threshold in effect afterwards.
func SetLevel(level Level) Level {
	return std.SetLevel(level)
}

// GetLevel returns the package-level logger's threshold.
func GetLevel() Level {
	return std.GetLevel()
}

// Open redirects the package-level logger to a file. See Logger.Open.
func Open(filename string, maxBackups int) error {
	return std.Open(filename, maxBackups)
}

// Close closes the package-level logger's destination. See Logger.Close.
func Close() error {
	return std.Close()
}

// SetOutput redirects the package-level logger's records to w.
func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// Error writes an error record to the package-level logger and returns
// the message as an error.
func Error(msg string) error {
	std.log(defaultCallDepth, ErrorLevel, ErrorTag, msg)

	return ewrap.New(msg)
}

// Errorf writes a formatted error record to the package-level logger.
func Errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	std.log(defaultCallDepth, ErrorLevel, ErrorTag, msg)

	return ewrap.New(msg)
}

// Warn writes a warning record to the package-level logger and returns
// the message as an error.
func Warn(msg string) error {
	std.log(defaultCallDepth, WarningLevel, WarningTag, msg)

	return ewrap.New(msg)
}

// Warnf writes a formatted warning record to the package-level logger.
func Warnf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	std.log(defaultCallDepth, WarningLevel, WarningTag, msg)

	return ewrap.New(msg)
}

// Info writes an informational record to the package-level logger.
func Info(msg string) {
	std.log(defaultCallDepth, InfoLevel, InfoTag, msg)
}

// Infof writes a formatted informational record to the package-level
// logger.
func Infof(format string, args ...any) {
	std.log(defaultCallDepth, InfoLevel, InfoTag, fmt.Sprintf(format, args...))
}

// Debug writes a debug record to the package-level logger.
func Debug(msg string) {
	std.log(defaultCallDepth, DebugLevel, DebugTag, msg)
}

// Debugf writes a formatted debug record to the package-level logger.
func Debugf(format string, args ...any) {
	std.log(defaultCallDepth, DebugLevel, DebugTag, fmt.Sprintf(format, args...))
}

// Fatal writes an abort record to the package-level logger and
// terminates the process with status 1.
func Fatal(msg string) {
	std.log(defaultCallDepth, ErrorLevel, AbortTag, msg)
	std.exitFunc(1)
}

// Fatalf writes a formatted abort record to the package-level logger
// and terminates the process with status 1.
func Fatalf(format string, args ...any) {
	std.log(defaultCallDepth, ErrorLevel, AbortTag, fmt.Sprintf(format, args...))
	std.exitFunc(1)
}
