package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dvd/internal/bounce"
	"github.com/vovakirdan/tui-dvd/internal/config"
	"github.com/vovakirdan/tui-dvd/internal/core"
	"github.com/vovakirdan/tui-dvd/internal/registry"
	"github.com/vovakirdan/tui-dvd/internal/storage"
)

// settings is the resolved configuration: config file values overridden by
// flags the user set explicitly.
type settings struct {
	Config    config.Config
	Logo      registry.Logo
	Delay     time.Duration
	Start     bounce.StartMode
	Direction bounce.Direction
	Palette   []core.Color
}

func loadSettings(cmd *cobra.Command) (settings, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("delay") {
		cfg.DelayMS = flagDelay
	}
	if flags.Changed("logo") {
		cfg.Logo = flagLogo
	}
	if flags.Changed("start") {
		cfg.Start = flagStart
	}
	if flags.Changed("direction") {
		cfg.Direction = flagDirection
	}
	if flags.Changed("palette") {
		cfg.Palette = flagPalette
	}
	if flags.Changed("db") {
		cfg.Stats.DBPath = flagDBPath
	}
	if flagNoStats {
		cfg.Stats.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}

	logo, err := registry.Get(cfg.Logo)
	if err != nil {
		return settings{}, fmt.Errorf("%w (run 'dvd logos' to see available logos)", err)
	}

	dbPath, err := config.ExpandHome(cfg.Stats.DBPath)
	if err != nil {
		return settings{}, err
	}
	cfg.Stats.DBPath = dbPath

	// Validate already resolved these without error.
	palette, _ := cfg.Colors()
	start, _ := cfg.StartMode()
	dir, _ := cfg.InitialDirection()

	return settings{
		Config:    cfg,
		Logo:      logo,
		Delay:     cfg.Delay(),
		Start:     start,
		Direction: dir,
		Palette:   palette,
	}, nil
}

// newLogger builds the logger. Without a path logs are discarded, because
// the screensaver owns the terminal. The returned func closes the log file.
func newLogger(path string, debug bool, prefix string) (*log.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// openStore opens the stats database, or returns nil when stats are disabled
// or the database is unavailable. The screensaver runs either way.
func openStore(s settings, logger *log.Logger) *storage.Store {
	if !s.Config.Stats.Enabled {
		return nil
	}
	store, err := storage.Open(s.Config.Stats.DBPath)
	if err != nil {
		logger.Warn("could not open stats database", "path", s.Config.Stats.DBPath, "error", err)
		return nil
	}
	return store
}

// paletteNames renders a palette for display.
func paletteNames(p []core.Color) string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = c.String()
	}
	return strings.Join(names, ",")
}
