// Package dbg is the public API of debug-tools, a diagnostic logging
// and execution-tracing facility for development builds.
//
// Four leveled emitters — Errorf, Warningf, Debugf, Infof — write one
// line per call in a fixed human-readable layout:
//
//	[<LEVEL>] <function> at <file>:<line> :\t <message>
//
// ERROR goes to the process error stream, everything else to standard
// output. The enclosing function, file and line are captured at the
// call site via runtime.Caller and are always accurate for the
// literal call location.
//
// Which emitters are active is decided at build time by a severity
// threshold (NONE < ERROR < WARNING < DEBUG < INFO = ALL) selected
// with one of the mutually exclusive build tags dbgnone, dbgerror,
// dbgwarning or dbgdebug; without a tag everything is emitted. The
// threshold is a compile-time constant — there is no runtime knob,
// no flag check, and gated-off package-level calls reduce to a
// constant-false branch the compiler removes. Because Go evaluates
// call arguments before the call, expensive or side-effecting
// arguments should be guarded on the exported Enabled constants:
//
//	if dbg.DebugEnabled {
//		dbg.Debugf("state: %s", expensiveDump())
//	}
//
// Trace and Tracef are execution counters: each lexical call site
// owns a persistent counter, incremented once per execution, and the
// emitted [TRACE] line carries the new count. This answers "how many
// times does this branch actually run" without hand-rolled counter
// variables — a site inside a recursive function counts every
// invocation in the recursion tree. Trace points share INFO's gate.
//
// The package-level functions delegate to a default Facility bound to
// the compile-time threshold and the real process streams. Facilities
// with other thresholds or writers can be built for tests:
//
//	f := dbg.NewBuilder().
//	    WithThreshold(dbg.LevelWarning).
//	    WithStdout(&buf).
//	    Build()
//
// None of the operations can fail in a way the caller observes;
// stream write errors are counted but never returned.
//
// The original facility made no concurrency guarantees at all. This
// implementation strengthens it for multi-goroutine programs: trace
// counters are atomic and each stream serializes its writes, so
// counts stay exact and lines stay whole. Ordering between the two
// streams remains unspecified.
package dbg
