package modemlog

// Level represents both the verbosity threshold of the log and the
// severity of individual records. Higher values are more verbose.
type Level uint8

const (
	// NoneLevel suppresses all output.
	NoneLevel Level = iota
	// ErrorLevel enables error records only.
	ErrorLevel
	// WarningLevel enables warnings and errors.
	WarningLevel
	// InfoLevel enables informational records and everything below.
	InfoLevel
	// DebugLevel enables debug records and everything below.
	DebugLevel
	// AllLevel enables every record.
	AllLevel
)

// Severity tags as they appear between the first two separators of a
// record. AbortTag marks the last record of a terminating process and
// has no threshold of its own: abort records are suppressed only at
// NoneLevel.
const (
	ErrorTag   = "ERROR"
	WarningTag = "WARNING"
	InfoTag    = "INFO"
	DebugTag   = "DEBUG"
	AbortTag   = "ABORT"
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case NoneLevel:
		return "NONE"
	case ErrorLevel:
		return "ERROR"
	case WarningLevel:
		return "WARNING"
	case InfoLevel:
		return "INFO"
	case DebugLevel:
		return "DEBUG"
	case AllLevel:
		return "ALL"
	default:
		return "UNKNOWN"
	}
}

// IsValid reports whether l is inside the recognized range.
func (l Level) IsValid() bool {
	return l <= AllLevel
}

// tag returns the record tag for a severity, or "" for levels that
// never tag records (NoneLevel and AllLevel bound the range; no record
// carries them).
func (l Level) tag() string {
	switch l {
	case ErrorLevel:
		return ErrorTag
	case WarningLevel:
		return WarningTag
	case InfoLevel:
		return InfoTag
	case DebugLevel:
		return DebugTag
	default:
		return ""
	}
}
