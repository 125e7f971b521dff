package main

import (
	"flag"
	"log/slog"
	"testing"
)

func TestLogLevelFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"bogus", slog.LevelWarn},
	}
	for _, tt := range tests {
		if got := logLevelFromString(tt.input); got != tt.expected {
			t.Errorf("logLevelFromString(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestDefaultLogLevelReportsWarnings(t *testing.T) {
	f := flag.Lookup("log-level")
	if f == nil {
		t.Fatal("log-level flag not registered")
	}
	if got := logLevelFromString(f.DefValue); got != slog.LevelWarn {
		t.Errorf("default log level = %v, want %v", got, slog.LevelWarn)
	}
}
