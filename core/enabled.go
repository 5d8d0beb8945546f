package core

// Per-level activity of this build. These are untyped constants derived
// from Threshold, so a branch like
//
//	if core.DebugEnabled {
//		...
//	}
//
// is provably dead under a reduced-threshold build and removed by the
// compiler, argument expressions included.
const (
	ErrorEnabled   = Threshold >= LevelError
	WarningEnabled = Threshold >= LevelWarning
	DebugEnabled   = Threshold >= LevelDebug
	InfoEnabled    = Threshold >= LevelInfo

	// TraceEnabled shares INFO's gate: trace points have no level of
	// their own.
	TraceEnabled = InfoEnabled
)
