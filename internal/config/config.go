// Package config provides YAML-based screensaver configuration loading
// and validation.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-dvd/internal/bounce"
	"github.com/vovakirdan/tui-dvd/internal/core"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config contains all configuration for the screensaver.
type Config struct {
	DelayMS   int         `yaml:"delay_ms"`
	Logo      string      `yaml:"logo"`
	Start     string      `yaml:"start"`     // "fixed" or "random"
	Direction string      `yaml:"direction"` // Heading for the fixed start
	Palette   []string    `yaml:"palette"`
	Stats     StatsConfig `yaml:"stats"`
	SSH       SSHConfig   `yaml:"ssh"`
}

// StatsConfig controls session statistics persistence.
type StatsConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path"`
}

// SSHConfig defines the defaults for `dvd serve`.
type SSHConfig struct {
	Address            string `yaml:"address"`
	HostKeyPath        string `yaml:"host_key_path"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Delay returns the frame delay as a duration.
func (c Config) Delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}

// IdleTimeout returns the SSH idle timeout as a duration.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.SSH.IdleTimeoutMinutes) * time.Minute
}

// Colors resolves the palette names.
func (c Config) Colors() ([]core.Color, error) {
	colors := make([]core.Color, 0, len(c.Palette))
	for _, name := range c.Palette {
		col, err := core.ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("%w: palette: %w", ErrInvalidConfig, err)
		}
		colors = append(colors, col)
	}
	return colors, nil
}

// StartMode resolves the start placement mode.
func (c Config) StartMode() (bounce.StartMode, error) {
	m, err := bounce.ParseStartMode(c.Start)
	if err != nil {
		return m, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return m, nil
}

// InitialDirection resolves the heading for the fixed start.
// An empty value means right-down.
func (c Config) InitialDirection() (bounce.Direction, error) {
	if c.Direction == "" {
		return bounce.RightDown, nil
	}
	d, err := bounce.ParseDirection(c.Direction)
	if err != nil {
		return d, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return d, nil
}

// Validate checks the configuration for values the screensaver cannot run with.
func (c Config) Validate() error {
	if d := c.Delay(); d < core.MinDelay || d > core.MaxDelay {
		return fmt.Errorf("%w: delay_ms must be between %d and %d, got %d",
			ErrInvalidConfig, core.MinDelay.Milliseconds(), core.MaxDelay.Milliseconds(), c.DelayMS)
	}
	if c.Logo == "" {
		return fmt.Errorf("%w: logo must not be empty", ErrInvalidConfig)
	}
	if len(c.Palette) == 0 {
		return fmt.Errorf("%w: palette must not be empty", ErrInvalidConfig)
	}
	if _, err := c.Colors(); err != nil {
		return err
	}
	if _, err := c.StartMode(); err != nil {
		return err
	}
	if _, err := c.InitialDirection(); err != nil {
		return err
	}
	if c.SSH.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: ssh.idle_timeout_minutes must not be negative", ErrInvalidConfig)
	}
	return nil
}
