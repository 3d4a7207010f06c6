package tui

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dvd/internal/bounce"
	"github.com/vovakirdan/tui-dvd/internal/core"
	"github.com/vovakirdan/tui-dvd/internal/registry"
	"github.com/vovakirdan/tui-dvd/internal/storage"
)

// Options configures a screensaver model.
type Options struct {
	Logo      registry.Logo
	Runtime   core.RuntimeConfig
	Start     bounce.StartMode
	Direction bounce.Direction
	Palette   []core.Color
	Logger    *log.Logger // Discards output when nil
	User      string      // SSH user, empty for local runs
}

// Model is the Bubble Tea model running the bouncing logo.
type Model struct {
	logo    registry.Logo
	bouncer *bounce.Bouncer
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	logger  *log.Logger
	user    string
	started time.Time

	delay    time.Duration
	tickGen  int
	paused   bool
	showHelp bool
	quitting bool
}

// NewModel creates the model. The bounce box is fixed from the screen size
// in opts.Runtime; later resizes only change the drawing surface.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	bounds := bounce.NewBounds(cfg.ScreenH, cfg.ScreenW, opts.Logo.Height(), opts.Logo.Width())
	if err := bounds.Check(); err != nil {
		return Model{}, fmt.Errorf("tui: %dx%d terminal cannot fit logo %q (%dx%d): %w",
			cfg.ScreenW, cfg.ScreenH, opts.Logo.ID, opts.Logo.Width(), opts.Logo.Height(), err)
	}

	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Delay <= 0 {
		cfg.Delay = core.DefaultDelay
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	b := bounce.New(bounds, bounce.Options{
		Start:     opts.Start,
		Direction: opts.Direction,
		Palette:   opts.Palette,
		Rng:       rand.New(rand.NewSource(cfg.Seed)),
	})

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		logo:    opts.Logo,
		bouncer: b,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    h,
		logger:  logger,
		user:    opts.User,
		started: time.Now(),
		delay:   cfg.Delay,
	}, nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("session started",
		"logo", m.logo.ID,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH),
		"bounds", fmt.Sprintf("%+v", m.bouncer.Bounds()),
		"delay", m.delay,
		"seed", m.config.Seed,
	)
	return tickCmd(m.tickGen, m.delay)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("session ended", m.summaryFields()...)
		return m, tea.Quit

	case core.ActionPause:
		m.paused = !m.paused
		// Abandon any pending tick so resuming never runs two chains.
		m.tickGen++
		if m.paused {
			return m, nil
		}
		return m, tickCmd(m.tickGen, m.delay)

	case core.ActionFaster:
		m.delay = core.ClampDelay(m.delay / 2)
		m.logger.Debug("delay changed", "delay", m.delay)

	case core.ActionSlower:
		m.delay = core.ClampDelay(m.delay * 2)
		m.logger.Debug("delay changed", "delay", m.delay)

	case core.ActionHelp:
		m.showHelp = !m.showHelp
	}

	return m, nil
}

// handleTick advances the logo one step and schedules the next tick.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.tickGen || m.paused || m.quitting {
		return m, nil
	}

	res := m.bouncer.Step()
	if res.ColorChanged {
		m.logger.Debug("bounce",
			"pos", fmt.Sprintf("%d,%d", res.Motion.Pos.X, res.Motion.Pos.Y),
			"dir", res.Motion.Dir,
			"from", res.PreviousColor,
			"color", res.Motion.Color,
			"corner", res.Corner,
		)
	}
	if res.Corner {
		m.logger.Info("corner hit", "corners", m.bouncer.Stats().Corners)
	}

	return m, tickCmd(m.tickGen, m.delay)
}

// View renders the current frame.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if err := PaintLogo(m.screen, m.logo, m.bouncer.Motion().Pos); err != nil {
		m.logger.Error("cannot draw logo", "error", err)
	}
	if m.paused {
		PaintPause(m.screen)
	}

	color := m.bouncer.Motion().Color
	if !m.showHelp || m.screen.Height() < 2 {
		return RenderScreen(m.screen, color)
	}

	// Help replaces the bottom row.
	return renderRows(m.screen, 0, m.screen.Height()-1, color) + "\n" + m.help.View(m.keys)
}

// Motion returns the logo's current motion state.
func (m Model) Motion() bounce.Motion {
	return m.bouncer.Motion()
}

// Paused reports whether the animation is frozen.
func (m Model) Paused() bool {
	return m.paused
}

// Delay returns the current frame delay.
func (m Model) Delay() time.Duration {
	return m.delay
}

// Summary returns the session record for the run so far.
func (m Model) Summary() storage.Session {
	stats := m.bouncer.Stats()
	return storage.Session{
		Logo:     m.logo.ID,
		User:     m.user,
		ScreenW:  m.config.ScreenW,
		ScreenH:  m.config.ScreenH,
		Steps:    stats.Steps,
		Bounces:  stats.Bounces,
		Corners:  stats.Corners,
		Duration: time.Since(m.started),
	}
}

func (m Model) summaryFields() []any {
	stats := m.bouncer.Stats()
	return []any{
		"user", m.user,
		"steps", stats.Steps,
		"bounces", stats.Bounces,
		"corners", stats.Corners,
		"duration", time.Since(m.started).Round(time.Second),
	}
}

// SaveSummary records m's session in store. A nil store is a no-op.
func SaveSummary(store *storage.Store, logger *log.Logger, m Model) {
	if store == nil {
		return
	}
	sess := m.Summary()
	if sess.Steps == 0 {
		return
	}
	if _, err := store.SaveSession(sess); err != nil {
		logger.Warn("could not save session stats", "error", err)
	}
}

// Run starts the Bubble Tea program for a local terminal and records the
// session in store (which may be nil) once the program exits.
func Run(opts Options, store *storage.Store) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if fm, ok := final.(Model); ok {
		SaveSummary(store, model.logger, fm)
	}
	return err
}
