package sink

import (
	"os"
	"strconv"
	"strings"
)

// rotationMarker tags the active file of a numbered backup series.
// A path such as "phy-0.log" rotates through "phy-1.log", "phy-2.log"
// and so on.
const rotationMarker = "-0."

// Pattern names the files of a numbered backup series. The index is
// substituted between a fixed prefix and suffix: "phy-0.log" parses
// into prefix "phy" and suffix "log".
type Pattern struct {
	prefix string
	suffix string
}

// ParsePattern derives the backup naming pattern from path, splitting
// at the first rotation marker. It reports false when path carries no
// marker, in which case the caller skips rotation entirely.
func ParsePattern(path string) (Pattern, bool) {
	idx := strings.Index(path, rotationMarker)
	if idx < 0 {
		return Pattern{}, false
	}

	return Pattern{
		prefix: path[:idx],
		suffix: path[idx+len(rotationMarker):],
	}, true
}

// Name returns the path of the numbered backup at index.
func (p Pattern) Name(index int) string {
	return p.prefix + "-" + strconv.Itoa(index) + "." + p.suffix
}

// Rotate shifts every numbered backup one slot up, oldest first, so
// that index 0 becomes free for a fresh log file. Renames run from
// maxBackups-1 down to 0; iterating upward would overwrite newer
// backups with older ones.
func Rotate(p Pattern, maxBackups int) {
	for i := maxBackups - 1; i >= 0; i-- {
		// Gaps in the series are expected; the remaining renames still run.
		_ = os.Rename(p.Name(i), p.Name(i+1))
	}
}
