// Package core defines the shared types used across the debug-tools
// facility.
//
// It provides the Level type for severity gating, the Record type that
// represents a single diagnostic message, and caller capture built on
// runtime.Caller.
//
// The severity threshold is a compile-time constant selected by build
// tag: dbgnone, dbgerror, dbgwarning, or dbgdebug (the tags are
// mutually exclusive). Without a tag, Threshold is LevelAll and every
// emitter is active. Because Threshold and the derived XxxEnabled
// constants are compile-time constants, branches gated on them are
// eliminated entirely from reduced-threshold builds; there is no
// runtime knob and no runtime check.
//
// Record objects are pooled via sync.Pool so that the emit path does
// not allocate a struct per message. Callers get a Record with
// GetRecord and must return it with PutRecord once it has been
// written.
package core
