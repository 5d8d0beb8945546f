// Package stream wraps the two process output streams the facility
// writes to.
//
// A Stream takes a mutex around each write so whole lines never
// interleave, and counts processed and failed writes via atomic
// counters. Write failures are counted but never surfaced — the
// facility has no error contract with its callers.
package stream
