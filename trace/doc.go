// Package trace maintains the per-call-site execution counters behind
// the facility's trace points. Each lexical occurrence of a trace
// call owns exactly one counter, keyed by its (file, line) source
// location; no two sites share a counter.
package trace
