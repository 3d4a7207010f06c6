package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-dvd/internal/bounce"
	"github.com/vovakirdan/tui-dvd/internal/core"
	"github.com/vovakirdan/tui-dvd/internal/registry"
	"github.com/vovakirdan/tui-dvd/internal/storage"
)

// modelContextKey stores the session's Model in the ssh.Context so the
// stats middleware can read it once the program exits. Copies of a Model
// share one bouncer, so the stored copy sees the final counters.
type modelContextKey struct{}

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.dvd/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Session settings shared by every connection.
	Logo      registry.Logo
	Delay     time.Duration
	Start     bounce.StartMode
	Direction bounce.Direction
	Palette   []core.Color

	// Seed makes sessions reproducible: the n-th session (from 0) is seeded
	// with Seed+n. Zero seeds every session from the clock.
	Seed int64

	// Store receives session stats; may be nil.
	Store *storage.Store

	// Logger defaults to a stderr logger prefixed "dvd-ssh".
	Logger *log.Logger
}

// SSHServer wraps a Wish SSH server that serves the screensaver.
type SSHServer struct {
	config   SSHServerConfig
	server   *ssh.Server
	logger   *log.Logger
	sessions atomic.Int64
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "dvd-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		logger: logger,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".dvd", "host_key")
	}

	// Ensure host key directory exists
	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.statsMiddleware,
			srv.loggingMiddleware,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// nextSeed returns the RNG seed for a new session.
func (s *SSHServer) nextSeed() int64 {
	n := s.sessions.Add(1) - 1
	if s.config.Seed == 0 {
		return time.Now().UnixNano()
	}
	return s.config.Seed + n
}

// sessionOptions builds the model options for a PTY of the given size.
func (s *SSHServer) sessionOptions(width, height int, user string) Options {
	return Options{
		Logo: s.config.Logo,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Delay:   s.config.Delay,
			Seed:    s.nextSeed(),
		},
		Start:     s.config.Start,
		Direction: s.config.Direction,
		Palette:   s.config.Palette,
		Logger:    s.logger.With("user", user),
		User:      user,
	}
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		wish.Fatalln(sshSession, "dvd requires an interactive terminal (ssh -t)")
		return nil, nil
	}

	model, err := NewModel(s.sessionOptions(pty.Window.Width, pty.Window.Height, sshSession.User()))
	if err != nil {
		s.logger.Warn("cannot start session", "user", sshSession.User(), "error", err)
		wish.Fatalln(sshSession, err)
		return nil, nil
	}

	sshSession.Context().SetValue(modelContextKey{}, model)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// statsMiddleware records the session once the program has exited.
func (s *SSHServer) statsMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		next(sshSession)
		if model, ok := sshSession.Context().Value(modelContextKey{}).(Model); ok {
			SaveSummary(s.config.Store, s.logger, model)
		}
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("connection opened",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("connection closed",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address, "logo", s.config.Logo.ID)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
