package dbg

import (
	"io"
	"testing"
)

func newDiscardFacility(threshold Level) *Facility {
	return NewBuilder().
		WithThreshold(threshold).
		WithStdout(io.Discard).
		WithStderr(io.Discard).
		Build()
}

func BenchmarkInfof(b *testing.B) {
	f := newDiscardFacility(LevelAll)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Infof("info message")
	}
}

func BenchmarkInfof_Formatted(b *testing.B) {
	f := newDiscardFacility(LevelAll)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Infof("x=%d y=%s", i, "value")
	}
}

func BenchmarkDebugf_GatedOff(b *testing.B) {
	// A filtered-out emitter should cost one comparison.
	f := newDiscardFacility(LevelError)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Debugf("invisible %d", i)
	}
}

func BenchmarkTracef(b *testing.B) {
	f := newDiscardFacility(LevelAll)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Tracef("n = %d", i)
	}
}
