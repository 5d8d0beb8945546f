// Package formatter serializes records into the facility's single
// fixed line layout:
//
//	[<TAG>] <function> at <file>:<line> :\t <message>\n
//
// The layout is deliberately not configurable — one line per call,
// human-readable, nothing structured.
//
// Rendering goes through a pooled bytes.Buffer and Append-style
// functions so the write path stays allocation-free. Buffers larger
// than 64 KiB are not returned to the pool to prevent a single large
// message from permanently inflating memory usage.
package formatter
