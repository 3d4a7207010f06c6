// dvd bounces a logo around the terminal, DVD-player screensaver style.
//
// Usage:
//
//	dvd                      - Run the screensaver
//	dvd logos                - List available logos
//	dvd stats                - Show recorded sessions
//	dvd serve                - Serve the screensaver over SSH
//
// Global flags:
//
//	--config <path>  - YAML config file (default search: ~/.dvd/config.yaml, ./configs/dvd.yaml)
//	--seed <value>   - RNG seed for reproducible runs
//	--db <path>      - Stats database path (default: ~/.dvd/stats.db)
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dvd/internal/core"
	_ "github.com/vovakirdan/tui-dvd/internal/logos" // Register built-in logos
	"github.com/vovakirdan/tui-dvd/internal/platform/tui"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagDBPath  string
	flagNoStats bool
	flagLogFile string
	flagDebug   bool
	flagLogo    string

	// Screensaver flags
	flagDelay     int
	flagStart     string
	flagDirection string
	flagPalette   []string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dvd",
	Short: "Bounce a logo around your terminal",
	Long: `dvd is the DVD-player screensaver for your terminal: a logo drifts
diagonally, bounces off the screen edges and changes color on every hit.

Controls:
  P/Space  - Pause
  +/-      - Faster/slower
  ?        - Toggle help
  Q/Ctrl+C - Quit

Examples:
  dvd
  dvd --delay 100
  dvd --logo dvd-small --start random
  dvd --palette red,green,blue
  dvd serve --ssh :2222`,
	Args: cobra.NoArgs,
	Run:  runScreensaver,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to stats database (default from config: ~/.dvd/stats.db)")
	rootCmd.PersistentFlags().BoolVar(&flagNoStats, "no-stats", false, "Do not record session stats")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log every bounce")
	rootCmd.PersistentFlags().StringVar(&flagLogo, "logo", "", "Logo to bounce (see 'dvd logos')")
	rootCmd.PersistentFlags().IntVar(&flagDelay, "delay", 0, "Delay between frame updates in milliseconds (default 1000)")
	rootCmd.PersistentFlags().StringVar(&flagStart, "start", "", "Start placement: fixed or random")
	rootCmd.PersistentFlags().StringVar(&flagDirection, "direction", "", "Initial direction for a fixed start (e.g. right-down)")
	rootCmd.PersistentFlags().StringSliceVar(&flagPalette, "palette", nil, "Comma-separated color names")

	// Add subcommands
	rootCmd.AddCommand(logosCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
}

func runScreensaver(cmd *cobra.Command, _ []string) {
	s, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile, flagDebug, "dvd")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store := openStore(s, logger)

	opts := tui.Options{
		Logo: s.Logo,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Delay:   s.Delay,
			Seed:    flagSeed,
		},
		Start:     s.Start,
		Direction: s.Direction,
		Palette:   s.Palette,
		Logger:    logger,
	}

	runErr := tui.Run(opts, store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	switch {
	case runErr == nil:
	case errors.Is(runErr, tea.ErrInterrupted):
		closeLog()
		os.Exit(130)
	default:
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
