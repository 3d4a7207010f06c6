// Package logos registers the glyphs the screensaver can bounce.
package logos

import "github.com/vovakirdan/tui-dvd/internal/registry"

// DefaultID is the logo used when none is requested.
const DefaultID = "dvd"

var dvd = []string{
	"     @@@@@@@@@@@@@@@@@@@@@@@@          @@@@@@@@@@@@@@@@@@@     ",
	"     @@@@@@@@@@@@@@@@@@@@@@@@@       @@@@@@@@@@@@@@@@@@@@@@@@@ ",
	"    @@@@@@        @@@@@@ @@@@@@    @@@@@@  @@@@@@       @@@@@@@",
	"   @@@@@@@        @@@@@@  @@@@@  @@@@@@   @@@@@@        @@@@@@@",
	"   @@@@@@       @@@@@@@    @@@@@@@@@@     @@@@@@      @@@@@@@  ",
	"  @@@@@@@@@@@@@@@@@@       @@@@@@@@      @@@@@@@@@@@@@@@@@     ",
	"                            @@@@@                              ",
	"                             @@                                ",
	"        @@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@            ",
	"@@@@@@@@@@@@@@@@@@@@@@@            @@@@@@@@@@@@@@@@@@@@@@@@    ",
	"   @@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@@     ",
}

var dvdSmall = []string{
	" ████▄  █   █ ████▄ ",
	" █   █  ▀▄ ▄▀ █   █ ",
	" ████▀    █   ████▀ ",
	"   ▄▄▄▄▄▄▄▄▄▄▄▄▄▄   ",
	"  ▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀▀  ",
}

func init() {
	registry.Register(registry.Logo{ID: DefaultID, Title: "DVD Video", Lines: dvd})
	registry.Register(registry.Logo{ID: "dvd-small", Title: "DVD (compact)", Lines: dvdSmall})
}
