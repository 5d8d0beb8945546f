//go:build dbgdebug

package core

// Threshold is the severity threshold compiled into this binary.
const Threshold = LevelDebug
