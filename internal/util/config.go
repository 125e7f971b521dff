package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigEnvVar names a config file read when -config is not given.
const ConfigEnvVar = "JL_CONFIG"

type Configuration struct {
	Version     string
	BuildDate   string
	Commit      string
	LogLevel    string
	LogFile     string
	HistoryFile string
	// Prelude lists the builtin libraries imported before any input is read.
	Prelude    []string
	ConfigFile string
}

// fileConfig is the shape of the TOML config file. Unset keys leave the
// corresponding Configuration field untouched.
type fileConfig struct {
	LogLevel    *string  `toml:"log_level"`
	LogFile     *string  `toml:"log_file"`
	HistoryFile *string  `toml:"history_file"`
	Prelude     []string `toml:"prelude"`
}

// LoadConfigFile overlays the settings found in the TOML file at path onto c.
func (c *Configuration) LoadConfigFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	var fc fileConfig
	md, err := toml.Decode(string(data), &fc)
	if err != nil {
		return fmt.Errorf("decoding config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.LogFile != nil {
		c.LogFile = *fc.LogFile
	}
	if fc.HistoryFile != nil {
		c.HistoryFile = *fc.HistoryFile
	}
	if fc.Prelude != nil {
		c.Prelude = fc.Prelude
	}
	c.ConfigFile = path
	return nil
}

// ParsePrelude splits a comma separated module list, dropping empty entries.
func ParsePrelude(s string) []string {
	var mods []string
	for _, m := range strings.Split(s, ",") {
		if m = strings.TrimSpace(m); m != "" {
			mods = append(mods, m)
		}
	}
	return mods
}
