package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-dvd/internal/core"
	"github.com/vovakirdan/tui-dvd/internal/registry"
)

// background is the fixed backdrop every palette color is drawn on.
var background = lipgloss.Color("0")

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")).Background(background),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Background(background),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Background(background),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Background(background),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Background(background),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Background(background),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Background(background),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Background(background),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(background),
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// PaintLogo draws logo with its top-left corner at pos. Lines that run past
// the screen edge are clipped; that is not an error.
func PaintLogo(dst *core.Screen, logo registry.Logo, pos core.Point) error {
	for i, line := range logo.Lines {
		err := dst.WriteText(pos.X, pos.Y+i, line)
		if err != nil && !errors.Is(err, core.ErrOutOfBounds) {
			return err
		}
	}
	return nil
}

// PaintPause draws the centered pause banner.
func PaintPause(dst *core.Screen) {
	const label = " PAUSED "
	w, h := len(label)+2, 3
	full := core.NewRect(0, 0, dst.Width(), dst.Height())
	if w > full.W || h > full.H {
		return
	}
	box := full.Centered(w, h)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawText(box.X+1, box.Y+1, label)
}

// RenderScreen converts a Screen buffer to a string drawn entirely in color c.
// The whole frame shares one color, like a terminal background change.
func RenderScreen(s *core.Screen, c core.Color) string {
	return renderRows(s, 0, s.Height(), c)
}

// renderRows renders the half-open row range [from, to).
func renderRows(s *core.Screen, from, to int, c core.Color) string {
	style := styleFor(c)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*(to-from)*2 + (to - from))

	for y := from; y < to; y++ {
		if y > from {
			sb.WriteRune('\n')
		}
		sb.WriteString(style.Render(s.Row(y)))
	}
	return sb.String()
}
