// Package benchmark compares the debug-tools emitters against the
// established Go logging frameworks (zap, zerolog, logrus, log/slog)
// under identical conditions: every logger writes to io.Discard at
// full verbosity.
//
// The comparison is not apples-to-apples — the frameworks timestamp
// and structure their output while debug-tools emits a fixed
// source-location line — but it bounds the cost of the facility's
// caller capture against what the ecosystem pays per log call.
package benchmark
