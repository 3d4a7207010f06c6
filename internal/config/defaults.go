package config

import (
	_ "embed"
)

//go:embed defaults/dvd.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		DelayMS:   1000,
		Logo:      "dvd",
		Start:     "fixed",
		Direction: "right-down",
		Palette:   []string{"white", "cyan", "red", "green", "yellow", "magenta"},
		Stats: StatsConfig{
			Enabled: true,
			DBPath:  "~/.dvd/stats.db",
		},
		SSH: SSHConfig{
			Address:            ":23235",
			IdleTimeoutMinutes: 30,
		},
	}
}
