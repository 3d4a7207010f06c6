package bounce

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-dvd/internal/core"
)

// StepResult describes what happened during one Step.
type StepResult struct {
	Motion        Motion
	ColorChanged  bool
	Corner        bool
	PreviousColor core.Color
}

// Stats counts what a bouncer has done since it was created.
type Stats struct {
	Steps   int
	Bounces int
	Corners int
}

// Bouncer owns a Motion and advances it inside fixed Bounds.
// It is not safe for concurrent use; one control flow drives it.
type Bouncer struct {
	bounds   Bounds
	motion   Motion
	selector *ColorSelector
	stats    Stats
}

// Options configures New.
type Options struct {
	Start     StartMode
	Direction Direction    // Heading for StartFixed
	Palette   []core.Color // Defaults to core.ClassicPalette
	Rng       *rand.Rand   // Seeded from the clock when nil
}

// New creates a bouncer with its initial motion derived from opts.
// The initial color is drawn from the full palette.
func New(b Bounds, opts Options) *Bouncer {
	if opts.Rng == nil {
		opts.Rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	sel := NewColorSelector(opts.Palette, opts.Rng)

	m := Motion{Dir: opts.Direction}
	switch opts.Start {
	case StartRandom:
		m.Pos, m.Dir = RandomStart(b, opts.Rng)
	default:
		m.Pos = FixedStart(b)
	}
	m.Color = sel.Initial()

	return NewWithMotion(b, m, sel)
}

// NewWithMotion creates a bouncer from an explicit starting motion.
func NewWithMotion(b Bounds, m Motion, sel *ColorSelector) *Bouncer {
	return &Bouncer{
		bounds:   b,
		motion:   m,
		selector: sel,
	}
}

// Bounds returns the bounce box limits.
func (b *Bouncer) Bounds() Bounds {
	return b.bounds
}

// Motion returns the current motion state.
func (b *Bouncer) Motion() Motion {
	return b.motion
}

// Stats returns the counters accumulated so far.
func (b *Bouncer) Stats() Stats {
	return b.stats
}

// Step advances the logo by one cell. A collision picks exactly one new
// color, also when both axes reflect.
func (b *Bouncer) Step() StepResult {
	next, collided, corner := Advance(b.motion, b.bounds)

	res := StepResult{PreviousColor: b.motion.Color, Corner: corner}
	if collided {
		next.Color = b.selector.Next(b.motion.Color)
		res.ColorChanged = next.Color != b.motion.Color
		b.stats.Bounces++
	}
	if corner {
		b.stats.Corners++
	}
	b.stats.Steps++

	b.motion = next
	res.Motion = next
	return res
}
