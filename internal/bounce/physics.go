// Package bounce implements the screensaver's motion state machine: a logo
// anchored at an integer cell travels diagonally one cell per step and
// reflects off the edges of its bounce box.
package bounce

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-dvd/internal/core"
)

// ErrScreenTooSmall is returned when the glyph does not fit on the screen.
var ErrScreenTooSmall = errors.New("bounce: screen smaller than logo")

// Bounds is the inclusive range the logo's top-left anchor may occupy.
type Bounds struct {
	MaxCol int
	MaxRow int
}

// NewBounds derives the bounce box from screen and glyph dimensions.
func NewBounds(screenRows, screenCols, glyphRows, glyphCols int) Bounds {
	return Bounds{
		MaxCol: screenCols - glyphCols,
		MaxRow: screenRows - glyphRows,
	}
}

// Valid reports whether the glyph fits on the screen at all.
func (b Bounds) Valid() bool {
	return b.MaxCol >= 0 && b.MaxRow >= 0
}

// Check returns ErrScreenTooSmall unless the logo has room to travel at
// least one cell along each axis.
func (b Bounds) Check() error {
	if !b.Valid() {
		return fmt.Errorf("%w: logo overflows by %dx%d", ErrScreenTooSmall, max(-b.MaxCol, 0), max(-b.MaxRow, 0))
	}
	if b.MaxCol < 1 || b.MaxRow < 1 {
		return fmt.Errorf("%w: no room to move in a %dx%d bounce box", ErrScreenTooSmall, b.MaxCol+1, b.MaxRow+1)
	}
	return nil
}

// Contains reports whether p lies inside the bounce box.
func (b Bounds) Contains(p core.Point) bool {
	return p.X >= 0 && p.X <= b.MaxCol && p.Y >= 0 && p.Y <= b.MaxRow
}

// Motion is the mutable part of the logo: where it is, where it is going and
// the color it is drawn in.
type Motion struct {
	Pos   core.Point
	Dir   Direction
	Color core.Color
}

// move applies d to p.
func move(p core.Point, d Direction) core.Point {
	return p.Add(d.Delta())
}

// resolve returns the direction after testing candidate against b.
// Columns are checked first; only one axis is inverted per call.
func resolve(candidate core.Point, d Direction, b Bounds) Direction {
	if candidate.X < 0 || candidate.X > b.MaxCol {
		return d.InverseHorizontal()
	}
	if candidate.Y < 0 || candidate.Y > b.MaxRow {
		return d.InverseVertical()
	}
	return d
}

// Advance computes the motion one step later. collided is set when the
// direction changed, corner when both axes had to be reflected in the same
// step. Color is carried over unchanged; picking a new one is the caller's job.
func Advance(m Motion, b Bounds) (next Motion, collided, corner bool) {
	next = m
	candidate := move(m.Pos, m.Dir)
	dir := resolve(candidate, m.Dir, b)

	if dir != m.Dir {
		collided = true
		candidate = move(m.Pos, dir)

		// Reflecting one axis can leave the other out of bounds (corner hit).
		if second := resolve(candidate, dir, b); second != dir {
			corner = true
			dir = second
			candidate = move(m.Pos, dir)
		}
	}

	next.Pos = candidate
	next.Dir = dir
	return next, collided, corner
}
