//go:build dbgerror

package core

// Threshold is the severity threshold compiled into this binary.
const Threshold = LevelError
