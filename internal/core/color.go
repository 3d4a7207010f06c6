package core

import (
	"fmt"
	"strings"
)

// Color represents the frame color passed to the renderer.
// Values map to ANSI color codes in the platform layer.
type Color uint8

// Predefined colors. The first six form the classic screensaver palette.
const (
	ColorDefault Color = iota
	ColorWhite
	ColorCyan
	ColorRed
	ColorGreen
	ColorYellow
	ColorMagenta
	ColorBlue
	ColorOrange
	ColorGray
)

var colorNames = map[Color]string{
	ColorDefault: "default",
	ColorWhite:   "white",
	ColorCyan:    "cyan",
	ColorRed:     "red",
	ColorGreen:   "green",
	ColorYellow:  "yellow",
	ColorMagenta: "magenta",
	ColorBlue:    "blue",
	ColorOrange:  "orange",
	ColorGray:    "gray",
}

// String returns the lower-case color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ParseColor looks up a color by name (case-insensitive).
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// ClassicPalette returns the six colors the screensaver cycles through by default.
func ClassicPalette() []Color {
	return []Color{ColorWhite, ColorCyan, ColorRed, ColorGreen, ColorYellow, ColorMagenta}
}
