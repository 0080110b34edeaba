// Package modemlog provides the process-wide diagnostic log used across
// acoustic modem stacks and the tooling around them.
//
// The package favors predictability over features:
// - Five verbosity levels gating four record severities plus abort
// - A single shared destination: stderr by default, or one log file
// - A fixed line format, stable enough to parse with a split on '|'
// - Startup rotation of numbered log file series (phy-0.log, phy-1.log, ...)
// - Stateless helpers for dumping signals and binary payloads (pkg/dump)
//
// Every record is one line:
//
//	<epoch-millis>|<TAG>|<file>:<line>|<message>
//
// where TAG is one of ERROR, WARNING, INFO, DEBUG or ABORT and <file>
// is the basename of the calling source file.
//
// Basic usage:
//
//	log, err := modemlog.New(modemlog.DefaultConfig())
//	if err != nil {
//		panic(err)
//	}
//
//	log.Info("modem ready")
//
//	if err := modem.Sync(); err != nil {
//		return log.Errorf("carrier sync failed: %v", err)
//	}
//
// Error and Warn return the message as an error so call sites can
// report and propagate in one statement. A package-level logger with
// the same surface serves code that does not carry a *Logger:
//
//	modemlog.SetLevel(modemlog.DebugLevel)
//	modemlog.Debug("chirp detected")
package modemlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hyp3rd/ewrap"

	"github.com/acomms-io/modemlog/internal/sink"
)

const (
	// defaultCallDepth reaches the user frame from an exported logging
	// function: runtime.Caller(0) is caller(), 1 the log dispatcher,
	// 2 the exported function, 3 its caller.
	defaultCallDepth = 3

	// openCallDepth reports Open itself as the call site of the warning
	// written when a log file cannot be opened.
	openCallDepth = 2

	// lineBufferSize is the initial capacity of the composition buffer;
	// typical records fit without growing it.
	lineBufferSize = 1024

	callerUnknown = "???"
)

// Logger is a leveled line logger bound to one shared destination.
//
// One mutex serializes timestamping, composition, the write and the
// flush of every record, so concurrent records never interleave and
// timestamps never decrease within the destination. The threshold is
// atomic and may be adjusted at any time from any goroutine, as may the
// destination itself.
type Logger struct {
	level atomic.Uint32

	mu        sync.Mutex
	out       io.Writer
	owned     bool // out was opened by this logger and is closed on swap
	buf       []byte
	colorMode ColorMode
	colorize  bool
	tagColors map[string]string
	exitFunc  func(int)
}

// New creates a Logger from config. A nil Output falls back to stderr.
// When FilePath is set the file is opened, after backup rotation,
// before New returns; a file that cannot be opened fails construction.
func New(config Config) (*Logger, error) {
	if !config.Level.IsValid() {
		return nil, ewrap.New("invalid log level").
			WithMetadata("level", config.Level)
	}

	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	exit := config.ExitFunc
	if exit == nil {
		exit = os.Exit
	}

	tagColors := config.Color.TagColors
	if tagColors == nil {
		tagColors = DefaultTagColors()
	}

	logger := &Logger{
		out:       output,
		buf:       make([]byte, 0, lineBufferSize),
		colorMode: config.Color.Mode,
		colorize:  shouldColorize(config.Color.Mode, output),
		tagColors: tagColors,
		exitFunc:  exit,
	}
	logger.level.Store(uint32(config.Level))

	if config.FilePath != "" {
		err := logger.Open(config.FilePath, config.MaxBackups)
		if err != nil {
			return nil, err
		}
	}

	return logger, nil
}

// SetLevel adjusts the verbosity threshold and returns the threshold in
// effect afterwards. Out-of-range values leave the threshold untouched,
// making the returned value a plain read in that case.
func (l *Logger) SetLevel(level Level) Level {
	if level.IsValid() {
		l.level.Store(uint32(level))
	}

	return l.GetLevel()
}

// GetLevel returns the current verbosity threshold.
func (l *Logger) GetLevel() Level {
	//nolint:gosec // The stored value always originates from a valid Level.
	return Level(l.level.Load())
}

// Error writes an error record and returns the message as an error, so
// call sites can report and propagate in one statement:
//
//	return log.Error("modem not responding")
//
// The error is non-nil whether or not the record cleared the threshold.
func (l *Logger) Error(msg string) error {
	l.log(defaultCallDepth, ErrorLevel, ErrorTag, msg)

	return ewrap.New(msg)
}

// Errorf writes a formatted error record. See Error for the returned
// error's contract.
func (l *Logger) Errorf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	l.log(defaultCallDepth, ErrorLevel, ErrorTag, msg)

	return ewrap.New(msg)
}

// Warn writes a warning record and returns the message as an error,
// with the same contract as Error.
func (l *Logger) Warn(msg string) error {
	l.log(defaultCallDepth, WarningLevel, WarningTag, msg)

	return ewrap.New(msg)
}

// Warnf writes a formatted warning record.
func (l *Logger) Warnf(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	l.log(defaultCallDepth, WarningLevel, WarningTag, msg)

	return ewrap.New(msg)
}

// Info writes an informational record.
func (l *Logger) Info(msg string) {
	l.log(defaultCallDepth, InfoLevel, InfoTag, msg)
}

// Infof writes a formatted informational record.
func (l *Logger) Infof(format string, args ...any) {
	l.log(defaultCallDepth, InfoLevel, InfoTag, fmt.Sprintf(format, args...))
}

// Debug writes a debug record.
func (l *Logger) Debug(msg string) {
	l.log(defaultCallDepth, DebugLevel, DebugTag, msg)
}

// Debugf writes a formatted debug record.
func (l *Logger) Debugf(format string, args ...any) {
	l.log(defaultCallDepth, DebugLevel, DebugTag, fmt.Sprintf(format, args...))
}

// Fatal writes an abort record and terminates the process with status 1.
// Termination is unconditional; only the record is subject to the
// threshold, and only NoneLevel suppresses it.
func (l *Logger) Fatal(msg string) {
	l.log(defaultCallDepth, ErrorLevel, AbortTag, msg)
	l.exitFunc(1)
}

// Fatalf writes a formatted abort record and terminates the process
// with status 1.
func (l *Logger) Fatalf(format string, args ...any) {
	l.log(defaultCallDepth, ErrorLevel, AbortTag, fmt.Sprintf(format, args...))
	l.exitFunc(1)
}

// Output writes a record at the given level on behalf of a wrapper.
// calldepth counts the stack frames up to the reported call site: 1 is
// the caller of Output, 2 the caller's caller, and so on. Error and
// warning records yield the usual message error; other levels return
// nil. Levels that tag no records (NoneLevel, AllLevel) are ignored.
func (l *Logger) Output(calldepth int, level Level, msg string) error {
	tag := level.tag()
	if tag == "" {
		return nil
	}

	l.log(calldepth+2, level, tag, msg)

	if level == ErrorLevel || level == WarningLevel {
		return ewrap.New(msg)
	}

	return nil
}

// Open redirects the log to filename, opened in append mode and created
// if missing; its directory must already exist. When maxBackups exceeds
// 1 and filename contains the "-0." rotation marker, existing numbered
// backups shift up one slot first, so the series keeps maxBackups
// generations.
//
// On failure the previous destination stays in place and keeps working;
// a warning records the failed attempt.
func (l *Logger) Open(filename string, maxBackups int) error {
	if maxBackups > 1 {
		if pattern, ok := sink.ParsePattern(filename); ok {
			sink.Rotate(pattern, maxBackups)
		}
	}

	file, err := sink.OpenAppend(filename)
	if err != nil {
		l.log(openCallDepth, WarningLevel, WarningTag, "Cannot open log file")

		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.closeSink()
	l.out = file
	l.owned = true
	l.colorize = shouldColorize(l.colorMode, file)

	return nil
}

// Close closes the destination when the logger owns it and directs
// subsequent records to io.Discard. Standard streams and
// caller-supplied writers are left open. Logging after Close is safe
// and produces nothing.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.closeSink()
	l.out = io.Discard
	l.colorize = false

	return err
}

// SetOutput redirects records to w, closing the previous destination if
// the logger owned it. A nil w falls back to stderr.
func (l *Logger) SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.closeSink()
	l.out = w
	l.owned = false
	l.colorize = shouldColorize(l.colorMode, w)
}

// closeSink closes the current destination if this logger opened it.
// Standard streams are never closed. Callers must hold mu.
func (l *Logger) closeSink() error {
	if !l.owned {
		return nil
	}

	l.owned = false

	file, ok := l.out.(*os.File)
	if !ok || sink.IsStandardStream(file) {
		return nil
	}

	err := file.Close()
	if err != nil {
		return ewrap.Wrap(err, "closing log file")
	}

	return nil
}

// log gates, composes and writes one record. The timestamp is taken
// inside the critical section so records reach the destination in
// nondecreasing timestamp order.
func (l *Logger) log(calldepth int, severity Level, tag, msg string) {
	if l.level.Load() < uint32(severity) {
		return
	}

	// The call site is resolved before taking the lock; only work that
	// affects record ordering happens inside it.
	file, line := caller(calldepth)

	l.mu.Lock()
	defer l.mu.Unlock()

	l.buf = l.buf[:0]
	l.buf = strconv.AppendInt(l.buf, time.Now().UnixMilli(), 10)
	l.buf = append(l.buf, '|')
	l.buf = l.appendTag(l.buf, tag)
	l.buf = append(l.buf, '|')
	l.buf = append(l.buf, file...)
	l.buf = append(l.buf, ':')
	l.buf = strconv.AppendInt(l.buf, int64(line), 10)
	l.buf = append(l.buf, '|')
	l.buf = append(l.buf, msg...)
	l.buf = append(l.buf, '\n')

	// A failed write has nowhere to be reported; the next record simply
	// tries again.
	_, _ = l.out.Write(l.buf)
	_ = sink.Flush(l.out)
}

// appendTag writes the severity tag, colored when the destination
// allows it.
func (l *Logger) appendTag(buf []byte, tag string) []byte {
	if l.colorize {
		if seq := l.tagColors[tag]; seq != "" {
			buf = append(buf, seq...)
			buf = append(buf, tag...)

			return append(buf, Reset...)
		}
	}

	return append(buf, tag...)
}

// caller resolves the basename and line of the calling source file.
func caller(calldepth int) (string, int) {
	_, file, line, ok := runtime.Caller(calldepth)
	if !ok {
		return callerUnknown, 0
	}

	return filepath.Base(file), line
}
