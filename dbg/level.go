package dbg

import "github.com/DIYEmbeddedSystems/debug-tools/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	LevelNone    = core.LevelNone
	LevelError   = core.LevelError
	LevelWarning = core.LevelWarning
	LevelDebug   = core.LevelDebug
	LevelInfo    = core.LevelInfo
	LevelAll     = core.LevelAll
)

// Threshold is the severity threshold compiled into this binary,
// selected by build tag (dbgnone, dbgerror, dbgwarning, dbgdebug;
// default LevelAll).
const Threshold = core.Threshold

// Build-time activity of each emitter. Guard expensive or
// side-effecting argument expressions on these so they are not
// evaluated in builds that discard the message:
//
//	if dbg.DebugEnabled {
//		dbg.Debugf("state: %s", expensiveDump())
//	}
const (
	ErrorEnabled   = core.ErrorEnabled
	WarningEnabled = core.WarningEnabled
	DebugEnabled   = core.DebugEnabled
	InfoEnabled    = core.InfoEnabled
	TraceEnabled   = core.TraceEnabled
)

// ParseLevel converts a string to a Level
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
