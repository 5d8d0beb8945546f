package core

import (
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelNone, "NONE"},
		{LevelError, "ERROR"},
		{LevelWarning, "WARNING"},
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Ordering(t *testing.T) {
	// The gating rule "emit iff threshold >= level" depends on this
	// exact order.
	if !(LevelNone < LevelError && LevelError < LevelWarning &&
		LevelWarning < LevelDebug && LevelDebug < LevelInfo) {
		t.Fatal("severity levels are not strictly ordered NONE < ERROR < WARNING < DEBUG < INFO")
	}
	if LevelAll != LevelInfo {
		t.Errorf("LevelAll = %v, want LevelInfo", LevelAll)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"NONE", LevelNone},
		{"off", LevelNone},
		{"ERROR", LevelError},
		{"error", LevelError},
		{"WARN", LevelWarning},
		{"Warning", LevelWarning},
		{"DEBUG", LevelDebug},
		{"INFO", LevelInfo},
		{"all", LevelInfo},
		{"nonsense", LevelAll},
		{"", LevelAll},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEnabledConstants(t *testing.T) {
	// The Enabled constants must agree with the compiled-in threshold.
	tests := []struct {
		name    string
		enabled bool
		level   Level
	}{
		{"ErrorEnabled", ErrorEnabled, LevelError},
		{"WarningEnabled", WarningEnabled, LevelWarning},
		{"DebugEnabled", DebugEnabled, LevelDebug},
		{"InfoEnabled", InfoEnabled, LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.enabled != (Threshold >= tt.level) {
				t.Errorf("%s = %v, want %v for Threshold=%v", tt.name, tt.enabled, Threshold >= tt.level, Threshold)
			}
		})
	}

	if TraceEnabled != InfoEnabled {
		t.Error("TraceEnabled must share INFO's gate")
	}
}
