package core

import "strings"

// Level represents the severity level of a diagnostic message.
// Higher values are more verbose; a message is emitted when the
// configured threshold is at least its level.
type Level int8

const (
	// LevelNone suppresses every message, including errors
	LevelNone Level = iota
	// LevelError for error messages
	LevelError
	// LevelWarning for warning messages
	LevelWarning
	// LevelDebug for debugging information
	LevelDebug
	// LevelInfo for informational messages; the most verbose level
	LevelInfo
)

// LevelAll is an alias for the most verbose level.
const LevelAll = LevelInfo

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "NONE"
	case LevelError:
		return "ERROR"
	case LevelWarning:
		return "WARNING"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a string to a Level. Unknown strings parse to
// LevelAll, matching the build-time default.
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "NONE", "OFF":
		return LevelNone
	case "ERROR":
		return LevelError
	case "WARN", "WARNING":
		return LevelWarning
	case "DEBUG":
		return LevelDebug
	case "INFO", "ALL":
		return LevelInfo
	default:
		return LevelAll
	}
}
