package dbg

import (
	"fmt"
	"strconv"

	"github.com/DIYEmbeddedSystems/debug-tools/core"
	"github.com/DIYEmbeddedSystems/debug-tools/formatter"
)

// Trace counts and reports how many times execution reaches this call
// site. Each lexical occurrence owns its own counter, starting at
// zero and incremented once per execution; the emitted line carries
// the new count. Trace points are active whenever INFO is.
func (f *Facility) Trace() {
	f.tracepoint(callerSkip, false, "", nil)
}

// Tracef is Trace with an additional printf-style message appended
// after the count.
func (f *Facility) Tracef(format string, args ...any) {
	f.tracepoint(callerSkip, true, format, args)
}

// tracepoint captures the call site once and uses it both as counter
// identity and as output context. Gated-off trace points do not touch
// their counter, matching the behavior of a site compiled out
// entirely.
func (f *Facility) tracepoint(skip int, withMsg bool, format string, args []any) {
	if f.threshold < core.LevelInfo {
		return
	}

	caller := core.GetCaller(skip)
	count := f.sites.Hit(caller.File, caller.Line)

	msg := "count = " + strconv.FormatUint(count, 10)
	if withMsg {
		msg += " :\t " + fmt.Sprintf(format, args...)
	}

	rec := core.GetRecord()
	rec.Level = core.LevelInfo
	rec.Tag = tagTrace
	rec.Caller = caller
	rec.Message = msg

	_ = formatter.WriteTo(rec, f.out)
	core.PutRecord(rec)
}
