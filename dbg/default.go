package dbg

import (
	"sync"

	"github.com/DIYEmbeddedSystems/debug-tools/core"
)

var (
	defaultFacility *Facility
	defaultMu       sync.RWMutex
)

func init() {
	// The default facility is bound to the compile-time threshold and
	// the real process streams.
	defaultFacility = NewBuilder().Build()
}

// Default returns the default facility
func Default() *Facility {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultFacility
}

// SetDefault sets the default facility
func SetDefault(f *Facility) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultFacility = f
}

// Package-level emitters using the default facility. Each checks its
// compile-time Enabled constant first, so under a reduced-threshold
// build the whole call body is dead code.

// Errorf writes an ERROR line to the error stream
func Errorf(format string, args ...any) {
	if !ErrorEnabled {
		return
	}
	f := Default()
	f.leveled(core.LevelError, tagError, f.errOut, callerSkip, format, args)
}

// Warningf writes a WARNING line to the standard output stream
func Warningf(format string, args ...any) {
	if !WarningEnabled {
		return
	}
	f := Default()
	f.leveled(core.LevelWarning, tagWarning, f.out, callerSkip, format, args)
}

// Debugf writes a DEBUG line to the standard output stream
func Debugf(format string, args ...any) {
	if !DebugEnabled {
		return
	}
	f := Default()
	f.leveled(core.LevelDebug, tagDebug, f.out, callerSkip, format, args)
}

// Infof writes an INFO line to the standard output stream
func Infof(format string, args ...any) {
	if !InfoEnabled {
		return
	}
	f := Default()
	f.leveled(core.LevelInfo, tagInfo, f.out, callerSkip, format, args)
}

// Trace counts and reports executions of this call site using the
// default facility.
func Trace() {
	if !TraceEnabled {
		return
	}
	Default().tracepoint(callerSkip, false, "", nil)
}

// Tracef is Trace with an additional printf-style message
func Tracef(format string, args ...any) {
	if !TraceEnabled {
		return
	}
	Default().tracepoint(callerSkip, true, format, args)
}

// Enabled reports whether the default facility emits at the given level
func Enabled(level Level) bool {
	return Default().Enabled(level)
}
