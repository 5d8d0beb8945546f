package dbg

import (
	"fmt"
	"io"
	"os"

	"github.com/DIYEmbeddedSystems/debug-tools/core"
	"github.com/DIYEmbeddedSystems/debug-tools/formatter"
	"github.com/DIYEmbeddedSystems/debug-tools/stream"
	"github.com/DIYEmbeddedSystems/debug-tools/trace"
)

// Message tags as they appear in the output line
const (
	tagError   = "ERROR"
	tagWarning = "WARNING"
	tagDebug   = "DEBUG"
	tagInfo    = "INFO"
	tagTrace   = "TRACE"
)

// callerSkip is the stack depth from core.GetCaller inside leveled
// down to the user's call site: GetCaller, leveled, exported wrapper,
// caller.
const callerSkip = 3

// Facility is an instance of the diagnostic facility (immutable).
// The package-level default instance is bound to the compile-time
// Threshold and the real process streams; instances built with other
// thresholds or writers exist for tests and embedding.
type Facility struct {
	threshold core.Level
	out       *stream.Stream // WARNING, DEBUG, INFO, TRACE
	errOut    *stream.Stream // ERROR
	sites     *trace.Registry
}

// Builder provides a fluent API for building Facility instances
type Builder struct {
	threshold core.Level
	stdout    io.Writer
	stderr    io.Writer
}

// NewBuilder creates a new facility builder bound to the compile-time
// threshold and the process streams.
func NewBuilder() *Builder {
	return &Builder{
		threshold: core.Threshold,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// WithThreshold sets the severity threshold
func (b *Builder) WithThreshold(t Level) *Builder {
	b.threshold = t
	return b
}

// WithStdout sets the writer for WARNING, DEBUG, INFO and TRACE lines
func (b *Builder) WithStdout(w io.Writer) *Builder {
	b.stdout = w
	return b
}

// WithStderr sets the writer for ERROR lines
func (b *Builder) WithStderr(w io.Writer) *Builder {
	b.stderr = w
	return b
}

// Build creates the Facility instance
func (b *Builder) Build() *Facility {
	return &Facility{
		threshold: b.threshold,
		out:       stream.New(b.stdout),
		errOut:    stream.New(b.stderr),
		sites:     &trace.Registry{},
	}
}

// Threshold returns the facility's severity threshold
func (f *Facility) Threshold() Level {
	return f.threshold
}

// Enabled reports whether messages at the given level are emitted
func (f *Facility) Enabled(level Level) bool {
	return f.threshold >= level
}

// OutStats returns write statistics for the standard output stream
func (f *Facility) OutStats() stream.Snapshot {
	return f.out.Stats()
}

// ErrStats returns write statistics for the error stream
func (f *Facility) ErrStats() stream.Snapshot {
	return f.errOut.Stats()
}

// Errorf writes an ERROR line to the error stream
func (f *Facility) Errorf(format string, args ...any) {
	f.leveled(core.LevelError, tagError, f.errOut, callerSkip, format, args)
}

// Warningf writes a WARNING line to the standard output stream
func (f *Facility) Warningf(format string, args ...any) {
	f.leveled(core.LevelWarning, tagWarning, f.out, callerSkip, format, args)
}

// Debugf writes a DEBUG line to the standard output stream
func (f *Facility) Debugf(format string, args ...any) {
	f.leveled(core.LevelDebug, tagDebug, f.out, callerSkip, format, args)
}

// Infof writes an INFO line to the standard output stream
func (f *Facility) Infof(format string, args ...any) {
	f.leveled(core.LevelInfo, tagInfo, f.out, callerSkip, format, args)
}

// leveled is the shared emit path. Gating happens before caller
// capture and formatting, so a filtered-out message costs a single
// comparison. Write errors are not surfaced to the caller; the
// stream counts them.
func (f *Facility) leveled(level core.Level, tag string, s *stream.Stream, skip int, format string, args []any) {
	if f.threshold < level {
		return
	}

	rec := core.GetRecord()
	rec.Level = level
	rec.Tag = tag
	rec.Caller = core.GetCaller(skip)
	rec.Message = fmt.Sprintf(format, args...)

	_ = formatter.WriteTo(rec, s)
	core.PutRecord(rec)
}
