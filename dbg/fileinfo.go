package dbg

import (
	"fmt"
	"runtime"
	rtdebug "runtime/debug"
)

// FileInfo returns a "File <file> compiled <stamp>." banner for the
// caller's source file. The stamp is the module's VCS commit time as
// recorded in the binary's build metadata; binaries built outside a
// VCS checkout report "(build stamp unavailable)".
func FileInfo() string {
	file := "unknown"
	if _, f, _, ok := runtime.Caller(1); ok {
		file = f
	}

	stamp := "(build stamp unavailable)"
	if bi, ok := rtdebug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			if s.Key == "vcs.time" && s.Value != "" {
				stamp = s.Value
			}
		}
	}

	return fmt.Sprintf("File %s compiled %s.", file, stamp)
}
