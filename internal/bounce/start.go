package bounce

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-dvd/internal/core"
)

// StartMode selects how the logo is placed when a session begins.
type StartMode string

const (
	// StartFixed places the logo 10 cells up and left of the bottom-right
	// limit, heading right-down.
	StartFixed StartMode = "fixed"
	// StartRandom places the logo anywhere at least 3 cells from the edges,
	// heading in a random direction.
	StartRandom StartMode = "random"
)

const (
	fixedInset  = 10
	randomInset = 3
)

// ParseStartMode validates a start mode name.
func ParseStartMode(name string) (StartMode, error) {
	switch m := StartMode(strings.ToLower(strings.TrimSpace(name))); m {
	case StartFixed, StartRandom:
		return m, nil
	case "":
		return StartFixed, nil
	default:
		return StartFixed, fmt.Errorf("bounce: unknown start mode %q", name)
	}
}

// FixedStart returns the default placement. Coordinates are clamped into b
// for screens too small for the inset.
func FixedStart(b Bounds) core.Point {
	return core.Point{
		X: core.Clamp(b.MaxCol-fixedInset, 0, max(b.MaxCol, 0)),
		Y: core.Clamp(b.MaxRow-fixedInset, 0, max(b.MaxRow, 0)),
	}
}

// RandomStart returns a random placement and direction.
func RandomStart(b Bounds, rng *rand.Rand) (core.Point, Direction) {
	p := core.Point{
		X: randomIn(rng, b.MaxCol),
		Y: randomIn(rng, b.MaxRow),
	}
	return p, Directions[rng.Intn(len(Directions))]
}

// randomIn picks from [inset, limit-inset], widening to [0, limit] when the
// range is empty.
func randomIn(rng *rand.Rand, limit int) int {
	limit = max(limit, 0)
	lo, hi := randomInset, limit-randomInset
	if lo > hi {
		lo, hi = 0, limit
	}
	return lo + rng.Intn(hi-lo+1)
}
