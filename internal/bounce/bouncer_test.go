package bounce

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-dvd/internal/core"
)

func newTestBouncer(b Bounds, m Motion, seed int64) *Bouncer {
	sel := NewColorSelector(core.ClassicPalette(), rand.New(rand.NewSource(seed)))
	return NewWithMotion(b, m, sel)
}

func TestBouncerReflection(t *testing.T) {
	b := Bounds{MaxCol: 16, MaxRow: 13}
	bc := newTestBouncer(b, Motion{Pos: core.Point{X: 0, Y: 6}, Dir: LeftDown, Color: core.ColorWhite}, 1)

	res := bc.Step()
	assert.Equal(t, core.Point{X: 1, Y: 7}, res.Motion.Pos)
	assert.Equal(t, RightDown, res.Motion.Dir)
	assert.True(t, res.ColorChanged)
	assert.False(t, res.Corner)
	assert.Equal(t, core.ColorWhite, res.PreviousColor)
	assert.NotEqual(t, core.ColorWhite, res.Motion.Color)
	assert.Equal(t, res.Motion, bc.Motion())
}

func TestBouncerCornerChangesColorOnce(t *testing.T) {
	b := Bounds{MaxCol: 16, MaxRow: 13}

	// Two selectors with the same seed: one drives the bouncer, the other
	// predicts what a single Next call would return.
	bc := newTestBouncer(b, Motion{Pos: core.Point{X: 0, Y: 0}, Dir: LeftUp, Color: core.ColorRed}, 9)
	oracle := NewColorSelector(core.ClassicPalette(), rand.New(rand.NewSource(9)))

	res := bc.Step()
	assert.Equal(t, core.Point{X: 1, Y: 1}, res.Motion.Pos)
	assert.Equal(t, RightDown, res.Motion.Dir)
	assert.True(t, res.ColorChanged)
	assert.True(t, res.Corner)
	assert.Equal(t, oracle.Next(core.ColorRed), res.Motion.Color)

	stats := bc.Stats()
	assert.Equal(t, Stats{Steps: 1, Bounces: 1, Corners: 1}, stats)
}

func TestBouncerInteriorKeepsColor(t *testing.T) {
	b := Bounds{MaxCol: 16, MaxRow: 13}
	bc := newTestBouncer(b, Motion{Pos: core.Point{X: 5, Y: 5}, Dir: RightUp, Color: core.ColorGreen}, 1)

	res := bc.Step()
	assert.Equal(t, core.Point{X: 6, Y: 4}, res.Motion.Pos)
	assert.False(t, res.ColorChanged)
	assert.Equal(t, core.ColorGreen, res.Motion.Color)
	assert.Equal(t, Stats{Steps: 1}, bc.Stats())
}

func TestBouncerLongRun(t *testing.T) {
	b := NewBounds(24, 80, 11, 63)
	bc := New(b, Options{Start: StartFixed, Direction: RightDown, Rng: rand.New(rand.NewSource(11))})

	prev := bc.Motion()
	for i := 0; i < 5000; i++ {
		res := bc.Step()
		require.True(t, b.Contains(res.Motion.Pos), "step %d escaped: %+v", i, res.Motion)
		if res.ColorChanged {
			assert.NotEqual(t, prev.Color, res.Motion.Color)
		} else {
			assert.Equal(t, prev.Color, res.Motion.Color)
		}
		prev = res.Motion
	}

	assert.Equal(t, b, bc.Bounds(), "Step must not change bounds")
	stats := bc.Stats()
	assert.Equal(t, 5000, stats.Steps)
	assert.Positive(t, stats.Bounces)
	assert.LessOrEqual(t, stats.Corners, stats.Bounces)
}

func TestBouncerDeterministicForSeed(t *testing.T) {
	b := NewBounds(40, 120, 11, 63)
	opts := func() Options {
		return Options{Start: StartRandom, Rng: rand.New(rand.NewSource(99))}
	}

	a, c := New(b, opts()), New(b, opts())
	for i := 0; i < 300; i++ {
		require.Equal(t, a.Step(), c.Step())
	}
}

func TestNewUsesFixedStartByDefault(t *testing.T) {
	b := NewBounds(24, 80, 11, 63) // 17x13
	bc := New(b, Options{Direction: RightDown, Rng: rand.New(rand.NewSource(1))})

	m := bc.Motion()
	assert.Equal(t, core.Point{X: 7, Y: 3}, m.Pos)
	assert.Equal(t, RightDown, m.Dir)
	assert.Contains(t, core.ClassicPalette(), m.Color)
}

func TestNewWithoutRng(t *testing.T) {
	b := Bounds{MaxCol: 10, MaxRow: 10}
	bc := New(b, Options{Start: StartRandom})
	assert.True(t, b.Contains(bc.Motion().Pos))
}
