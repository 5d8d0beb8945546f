package dbg

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
	"testing"
)

// swapDefault installs a capturing default facility and restores the
// previous one when the test finishes.
func swapDefault(t *testing.T, threshold Level) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	old := Default()
	f, out, errOut := newTestFacility(threshold)
	SetDefault(f)
	t.Cleanup(func() { SetDefault(old) })
	return out, errOut
}

func TestPackageLevel_Emitters(t *testing.T) {
	out, errOut := swapDefault(t, LevelAll)

	Infof("x=%d", 5)
	Warningf("careful")
	Debugf("details")
	Errorf("boom")

	got := out.String()
	for _, want := range []string{"[INFO]", "[WARNING]", "[DEBUG]", "x=5", "careful", "details"} {
		if !strings.Contains(got, want) {
			t.Errorf("stdout %q missing %q", got, want)
		}
	}
	if strings.Contains(got, "[ERROR]") {
		t.Errorf("stdout %q contains ERROR line, want it on stderr", got)
	}
	if !strings.Contains(errOut.String(), "[ERROR]") || !strings.Contains(errOut.String(), "boom") {
		t.Errorf("stderr = %q, want the ERROR line", errOut.String())
	}
}

func TestPackageLevel_ReportsUserCallSite(t *testing.T) {
	// The package-level wrappers must attribute the message to the
	// user's line, not to any frame inside the facility.
	out, _ := swapDefault(t, LevelAll)

	_, _, line, _ := runtime.Caller(0)
	Infof("here") // emitted from line+1

	got := out.String()
	if !strings.Contains(got, fmt.Sprintf("default_test.go:%d", line+1)) {
		t.Errorf("output %q does not report default_test.go:%d", got, line+1)
	}
	if !strings.Contains(got, "TestPackageLevel_ReportsUserCallSite") {
		t.Errorf("output %q missing enclosing function name", got)
	}
}

func TestPackageLevel_TraceCounts(t *testing.T) {
	out, _ := swapDefault(t, LevelAll)

	for i := 0; i < 3; i++ {
		Tracef("i = %d", i)
	}
	Trace()

	counts := parseCounts(t, out.String())
	if len(counts) != 4 {
		t.Fatalf("got %d TRACE lines, want 4", len(counts))
	}
	for i, n := range counts[:3] {
		if n != uint64(i+1) {
			t.Errorf("Tracef hit %d reported count %d, want %d", i+1, n, i+1)
		}
	}
	if counts[3] != 1 {
		t.Errorf("bare Trace site reported count %d, want 1 (own counter)", counts[3])
	}
}

func TestEnabled_PackageLevel(t *testing.T) {
	swapDefault(t, LevelError)

	if !Enabled(LevelError) {
		t.Error("Enabled(ERROR) = false at threshold ERROR")
	}
	if Enabled(LevelInfo) {
		t.Error("Enabled(INFO) = true at threshold ERROR")
	}
}

func TestSetDefault(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	f, _, _ := newTestFacility(LevelNone)
	SetDefault(f)
	if Default() != f {
		t.Error("Default() did not return the facility installed by SetDefault")
	}
}
