package modemlog

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/acomms-io/modemlog/internal/sink"
)

// DefaultLevel is the threshold a fresh logger starts with.
const DefaultLevel = InfoLevel

// Config holds configuration for the logger.
type Config struct {
	// Level is the verbosity threshold. Records above it are discarded.
	Level Level
	// Output is where records are written. Defaults to os.Stderr.
	Output io.Writer
	// FilePath, when set, redirects output to this file at construction
	// time, applying backup rotation first. The file's directory must
	// already exist.
	FilePath string
	// MaxBackups is how many numbered backups are shifted when FilePath
	// names a rotating series. Values below 2 disable rotation.
	MaxBackups int
	// Color controls severity-tag coloring.
	Color ColorConfig
	// ExitFunc replaces os.Exit for abort records. Tests use it to
	// observe Fatal without terminating the run.
	ExitFunc func(int)
}

// DefaultConfig returns the configuration a process starts with:
// stderr output at InfoLevel, plain records, no log file.
func DefaultConfig() Config {
	return Config{
		Level:  DefaultLevel,
		Output: os.Stderr,
		Color:  DefaultColorConfig(),
	}
}

// ProductionConfig returns a configuration for deployed modems: only
// warnings and errors pass, records stay plain for log collectors.
func ProductionConfig() Config {
	config := DefaultConfig()
	config.Level = WarningLevel
	config.Color.Mode = ColorModeNever

	return config
}

// DevelopmentConfig returns a configuration for interactive debugging:
// DebugLevel threshold and severity tags colored when the terminal
// allows it.
func DevelopmentConfig() Config {
	config := DefaultConfig()
	config.Level = DebugLevel
	config.Color.Mode = ColorModeAuto

	return config
}

// ResolveOutput maps a destination name to a writer. It accepts
// "stderr" (or an empty string), "stdout", "discard", or a file path;
// paths are opened in append mode and created when missing.
func ResolveOutput(output string) (io.Writer, error) {
	switch strings.ToLower(output) {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	case "discard":
		return io.Discard, nil
	default:
		file, err := sink.OpenAppend(filepath.Clean(output))
		if err != nil {
			return nil, err
		}

		return file, nil
	}
}

// ParseLevel converts a level name to a Level. Matching is
// case-insensitive and accepts the plural spellings used by modem
// configuration files ("errors", "warnings") alongside the canonical
// names.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(level) {
	case "none", "off":
		return NoneLevel, nil
	case "error", "errors":
		return ErrorLevel, nil
	case "warn", "warning", "warnings":
		return WarningLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "all":
		return AllLevel, nil
	default:
		return NoneLevel, ewrap.New("invalid log level: " + level)
	}
}
