// Package sink manages the shared log destination: append-mode file
// handles, startup rotation of numbered backup files, and detection of
// standard streams and terminals.
//
// The package holds no locks of its own. Serialization of writes is the
// logger's job; sink only opens, names and shuffles files.
package sink

import (
	"io"
	"os"

	"github.com/hyp3rd/ewrap"
	"github.com/mattn/go-isatty"
)

// logFileMode is the permission set for newly created log files.
const logFileMode = 0o644

// OpenAppend opens path for appending, creating the file if it does not
// exist. Parent directories are never created: pointing the logger at a
// missing directory is a configuration error the caller must see.
func OpenAppend(path string) (*os.File, error) {
	if path == "" {
		return nil, ewrap.New("log file path is required")
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, logFileMode)
	if err != nil {
		return nil, ewrap.Wrapf(err, "opening log file").
			WithMetadata("path", path)
	}

	return file, nil
}

// Flush pushes buffered data through writers that buffer in user space,
// such as bufio.Writer. *os.File writes are unbuffered and need no flush;
// syncing to disk per record is deliberately avoided.
func Flush(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}

	return nil
}

// IsStandardStream reports whether f is the process's stdout or stderr.
// Standard streams are never closed by the logger.
func IsStandardStream(f *os.File) bool {
	return f == os.Stdout || f == os.Stderr
}

// IsTerminal reports whether w is connected to an interactive terminal.
// Only *os.File writers can be terminals; anything else is assumed not
// to be. Regular files always report false, so colored output never
// reaches a log file.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return false
}
