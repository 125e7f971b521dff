package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jl.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
log_level = "warn"
history_file = "/tmp/jl_history"
prelude = ["std::io", "std::array"]
`)
	c := Configuration{LogLevel: "error", LogFile: "keep.log"}
	if err := c.LoadConfigFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if c.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", c.LogLevel)
	}
	if c.LogFile != "keep.log" {
		t.Errorf("unset key overwrote LogFile: %q", c.LogFile)
	}
	if c.HistoryFile != "/tmp/jl_history" {
		t.Errorf("HistoryFile = %q", c.HistoryFile)
	}
	if len(c.Prelude) != 2 || c.Prelude[0] != "std::io" || c.Prelude[1] != "std::array" {
		t.Errorf("Prelude = %v", c.Prelude)
	}
	if c.ConfigFile != path {
		t.Errorf("ConfigFile = %q, want %q", c.ConfigFile, path)
	}
}

func TestLoadConfigFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", `log_level = `, "decoding config"},
		{"unknown key", `colour = "red"`, "unknown keys colour"},
		{"wrong type", `prelude = "std::io"`, "decoding config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Configuration{}
			err := c.LoadConfigFile(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	c := Configuration{}
	if err := c.LoadConfigFile(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestParsePrelude(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"std::io", []string{"std::io"}},
		{" std::io , ,std::math", []string{"std::io", "std::math"}},
	}
	for _, tt := range tests {
		got := ParsePrelude(tt.input)
		if len(got) != len(tt.expected) {
			t.Errorf("ParsePrelude(%q) = %v, want %v", tt.input, got, tt.expected)
			continue
		}
		for i := range got {
			if got[i] != tt.expected[i] {
				t.Errorf("ParsePrelude(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		}
	}
}
