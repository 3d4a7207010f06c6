package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dvd/internal/bounce"
	"github.com/vovakirdan/tui-dvd/internal/core"
	"github.com/vovakirdan/tui-dvd/internal/storage"
)

func testOptions() Options {
	return Options{
		Logo: testLogo,
		Runtime: core.RuntimeConfig{
			ScreenW: 20,
			ScreenH: 8,
			Delay:   100 * time.Millisecond,
			Seed:    42,
		},
		Start:     bounce.StartFixed,
		Direction: bounce.RightDown,
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(testOptions())
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return nm, cmd
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelRejectsSmallScreen(t *testing.T) {
	opts := testOptions()
	opts.Runtime.ScreenW = 3

	_, err := NewModel(opts)
	assert.ErrorIs(t, err, bounce.ErrScreenTooSmall)
}

func TestNewModelDefaults(t *testing.T) {
	opts := testOptions()
	opts.Runtime.Delay = 0
	opts.Runtime.Seed = 0

	m, err := NewModel(opts)
	require.NoError(t, err)
	assert.Equal(t, core.DefaultDelay, m.Delay())
	assert.NotZero(t, m.config.Seed, "seed should be filled from the clock")
}

func TestNewModelSameSeedSameStart(t *testing.T) {
	opts := testOptions()
	opts.Start = bounce.StartRandom

	a, err := NewModel(opts)
	require.NoError(t, err)
	b, err := NewModel(opts)
	require.NoError(t, err)
	assert.Equal(t, a.Motion(), b.Motion())
}

func TestTickAdvancesLogo(t *testing.T) {
	m := newTestModel(t)
	start := m.Motion()

	m, cmd := update(t, m, TickMsg{Gen: 0, Time: time.Now()})
	require.NotNil(t, cmd, "tick should schedule the next tick")

	dx, dy := start.Dir.Delta()
	assert.Equal(t, start.Pos.Add(dx, dy), m.Motion().Pos)
}

func TestStaleTickIgnored(t *testing.T) {
	m := newTestModel(t)
	start := m.Motion()

	m, cmd := update(t, m, TickMsg{Gen: 7})
	assert.Nil(t, cmd, "stale tick should not schedule another")
	assert.Equal(t, start, m.Motion(), "stale tick should not move the logo")
}

func TestPauseAndResume(t *testing.T) {
	m := newTestModel(t)

	m, cmd := update(t, m, keyMsg("p"))
	require.True(t, m.Paused(), "p should pause")
	assert.Nil(t, cmd, "pausing should not schedule a tick")

	frozen := m.Motion()
	m, _ = update(t, m, TickMsg{Gen: m.tickGen})
	assert.Equal(t, frozen, m.Motion(), "paused model should not move")

	m, cmd = update(t, m, keyMsg(" "))
	require.False(t, m.Paused(), "space should resume")
	assert.NotNil(t, cmd, "resuming should schedule a tick")

	// A tick from before the pause must not start a second chain.
	_, cmd = update(t, m, TickMsg{Gen: 0})
	assert.Nil(t, cmd, "tick from an abandoned chain should be dropped")
}

func TestSpeedKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = update(t, m, keyMsg("+"))
	assert.Equal(t, 50*time.Millisecond, m.Delay())

	m, _ = update(t, m, keyMsg("-"))
	m, _ = update(t, m, keyMsg("-"))
	assert.Equal(t, 200*time.Millisecond, m.Delay())

	for i := 0; i < 20; i++ {
		m, _ = update(t, m, keyMsg("+"))
	}
	assert.Equal(t, core.MinDelay, m.Delay())

	for i := 0; i < 20; i++ {
		m, _ = update(t, m, keyMsg("-"))
	}
	assert.Equal(t, core.MaxDelay, m.Delay())
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := newTestModel(t)
			m, cmd := update(t, m, keyMsg(k))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.Empty(t, m.View(), "View after quit should be empty")
		})
	}
}

func TestViewDrawsLogo(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	assert.Contains(t, view, "ABC")
	assert.Contains(t, view, "DEF")
	assert.Equal(t, 8, strings.Count(view, "\n")+1)
}

func TestViewHelpAndPause(t *testing.T) {
	m := newTestModel(t)
	// Widen the help line so no binding is truncated.
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 8})

	m, _ = update(t, m, keyMsg("?"))
	assert.Contains(t, m.View(), "quit", "help view should list the quit binding")

	m, _ = update(t, m, keyMsg("p"))
	assert.Contains(t, m.View(), "PAUSED")
}

func TestResizeKeepsBounds(t *testing.T) {
	m := newTestModel(t)
	bounds := m.bouncer.Bounds()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 10, Height: 4})
	assert.Equal(t, bounds, m.bouncer.Bounds(), "resize must not change the bounce box")
	assert.Equal(t, 10, m.screen.Width())
	assert.Equal(t, 4, m.screen.Height())
	assert.NotPanics(t, func() { _ = m.View() })
}

func TestLongRunStaysInBounds(t *testing.T) {
	m := newTestModel(t)
	bounds := m.bouncer.Bounds()

	for i := 0; i < 1000; i++ {
		m, _ = update(t, m, TickMsg{Gen: m.tickGen})
		require.True(t, bounds.Contains(m.Motion().Pos), "tick %d escaped bounds: %+v", i, m.Motion())
	}

	sum := m.Summary()
	assert.Equal(t, 1000, sum.Steps)
	assert.Equal(t, "test", sum.Logo)
	assert.Equal(t, 20, sum.ScreenW)
	assert.Positive(t, sum.Bounces, "1000 steps in a 17x6 box should bounce")
}

func TestSaveSummary(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "stats.db"))
	require.NoError(t, err)
	defer store.Close()

	m := newTestModel(t)
	SaveSummary(store, nil, m) // no steps yet, nothing recorded

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{Gen: m.tickGen})
	}
	SaveSummary(store, nil, m)

	recent, err := store.RecentSessions(10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "test", recent[0].Logo)
	assert.Equal(t, 5, recent[0].Steps)
}

func TestSaveSummaryNilStore(t *testing.T) {
	m := newTestModel(t)
	assert.NotPanics(t, func() { SaveSummary(nil, nil, m) })
}

func TestKeyMapUnknownKey(t *testing.T) {
	assert.Equal(t, core.ActionNone, DefaultKeyMap().MapKey(keyMsg("x")))
}
