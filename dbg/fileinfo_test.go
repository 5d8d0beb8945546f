package dbg

import (
	"strings"
	"testing"
)

func TestFileInfo(t *testing.T) {
	got := FileInfo()

	if !strings.HasPrefix(got, "File ") {
		t.Errorf("FileInfo() = %q, want prefix %q", got, "File ")
	}
	if !strings.Contains(got, "fileinfo_test.go") {
		t.Errorf("FileInfo() = %q, want the caller's file name", got)
	}
	if !strings.Contains(got, " compiled ") {
		t.Errorf("FileInfo() = %q, want a compiled stamp", got)
	}
	if !strings.HasSuffix(got, ".") {
		t.Errorf("FileInfo() = %q, want trailing period", got)
	}
}
