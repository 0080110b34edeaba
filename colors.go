package modemlog

import (
	"io"
	"strings"

	"github.com/hyp3rd/ewrap"

	"github.com/acomms-io/modemlog/internal/sink"
)

//nolint:revive // Pointless to comment the colors.
const (
	// ANSI color codes for terminal output.

	Black   = "\x1b[30m"
	Red     = "\x1b[31m"
	Green   = "\x1b[32m"
	Yellow  = "\x1b[33m"
	Blue    = "\x1b[34m"
	Magenta = "\x1b[35m"
	Cyan    = "\x1b[36m"
	White   = "\x1b[37m"

	// BoldRed is the ANSI code for bold red text, used for abort records.
	BoldRed = "\x1b[31;1m"

	// Reset resets the terminal's color settings.
	Reset = "\x1b[0m"
)

// ColorMode selects when severity tags are wrapped in ANSI color.
type ColorMode uint8

const (
	// ColorModeNever disables color. It is the zero value, so records
	// stay byte-identical to the documented format unless color is
	// requested explicitly.
	ColorModeNever ColorMode = iota
	// ColorModeAuto colors tags only when the sink is an interactive
	// terminal. Files and pipes always receive plain records.
	ColorModeAuto
	// ColorModeAlways colors tags unconditionally.
	ColorModeAlways
)

// ParseColorMode converts a color mode name to a ColorMode. Recognized
// names are "never" (or "off"), "auto", and "always" (or "on"),
// case-insensitively.
func ParseColorMode(mode string) (ColorMode, error) {
	switch strings.ToLower(mode) {
	case "never", "off":
		return ColorModeNever, nil
	case "auto":
		return ColorModeAuto, nil
	case "always", "on":
		return ColorModeAlways, nil
	default:
		return ColorModeNever, ewrap.New("invalid color mode: " + mode)
	}
}

// ColorConfig holds color-related configuration for the logger.
type ColorConfig struct {
	// Mode selects when color applies.
	Mode ColorMode
	// TagColors maps severity tags to ANSI sequences. Nil selects
	// DefaultTagColors.
	TagColors map[string]string
}

// DefaultTagColors returns the stock palette: one color per severity
// tag, chosen for contrast between adjacent severities.
func DefaultTagColors() map[string]string {
	return map[string]string{
		AbortTag:   BoldRed,
		ErrorTag:   Red,
		WarningTag: Yellow,
		InfoTag:    Green,
		DebugTag:   Cyan,
	}
}

// DefaultColorConfig returns the default color configuration: no color,
// stock palette.
func DefaultColorConfig() ColorConfig {
	return ColorConfig{
		Mode:      ColorModeNever,
		TagColors: DefaultTagColors(),
	}
}

// shouldColorize resolves a color mode against a concrete sink.
//
//nolint:exhaustive // ColorModeNever is the default.
func shouldColorize(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorModeAlways:
		return true
	case ColorModeAuto:
		return sink.IsTerminal(w)
	default:
		return false
	}
}
