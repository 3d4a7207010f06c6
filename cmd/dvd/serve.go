package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dvd/internal/config"
	"github.com/vovakirdan/tui-dvd/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the screensaver over SSH",
	Long: `Start an SSH server that shows the bouncing logo to every connection.

Each SSH connection gets its own logo sized to its terminal.
Session stats from every user go to the same database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.dvd/host_key

Examples:
  dvd serve                           # Listen on :23235 with auto-generated key
  dvd serve --ssh :2222               # Listen on port 2222
  dvd serve --host-key ./my_host_key  # Use specific host key
  dvd serve --delay 200               # Faster logo for every viewer
  dvd serve --seed 7                  # Session n is seeded with 7+n

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, default from config: :23235)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config: 30)")
}

func runServe(cmd *cobra.Command, _ []string) {
	s, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		s.Config.SSH.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		s.Config.SSH.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		s.Config.SSH.IdleTimeoutMinutes = flagIdleTimeout
	}
	hostKey, err := config.ExpandHome(s.Config.SSH.HostKeyPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// The server owns stderr, so log there unless a file was requested.
	logger, closeLog, err := newLogger(flagLogFile, flagDebug, "dvd-ssh")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	if flagLogFile == "" {
		logger.SetOutput(os.Stderr)
	}

	store := openStore(s, logger)
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     s.Config.SSH.Address,
		HostKeyPath: hostKey,
		IdleTimeout: s.Config.IdleTimeout(),
		Logo:        s.Logo,
		Delay:       s.Delay,
		Start:       s.Start,
		Direction:   s.Direction,
		Palette:     s.Palette,
		Seed:        flagSeed,
		Store:       store,
		Logger:      logger,
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Serving %q on %s (palette %s, delay %s)\n", s.Logo.ID, server.Addr(), paletteNames(s.Palette), s.Delay)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
