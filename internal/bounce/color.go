package bounce

import (
	"math/rand"

	"github.com/vovakirdan/tui-dvd/internal/core"
)

// ColorSelector picks random palette colors.
type ColorSelector struct {
	palette []core.Color
	rng     *rand.Rand
}

// NewColorSelector creates a selector over palette. An empty palette falls
// back to core.ClassicPalette.
func NewColorSelector(palette []core.Color, rng *rand.Rand) *ColorSelector {
	if len(palette) == 0 {
		palette = core.ClassicPalette()
	}
	p := make([]core.Color, len(palette))
	copy(p, palette)
	return &ColorSelector{palette: p, rng: rng}
}

// Initial picks uniformly from the whole palette.
func (s *ColorSelector) Initial() core.Color {
	return s.palette[s.rng.Intn(len(s.palette))]
}

// Next picks uniformly from the palette entries that differ from current.
// A palette with no alternative returns current.
func (s *ColorSelector) Next(current core.Color) core.Color {
	candidates := make([]core.Color, 0, len(s.palette))
	for _, c := range s.palette {
		if c != current {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return current
	}
	return candidates[s.rng.Intn(len(candidates))]
}
