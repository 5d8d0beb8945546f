//go:build !dbgnone && !dbgerror && !dbgwarning && !dbgdebug

package core

// Threshold is the severity threshold compiled into this binary.
// Without any of the dbgnone/dbgerror/dbgwarning/dbgdebug build tags
// everything is emitted.
const Threshold = LevelAll
