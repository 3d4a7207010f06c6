// Package registry provides a global registry of logo glyphs.
// Logos register themselves in init() functions, allowing the platform
// to discover and draw them without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"unicode/utf8"
)

// ErrUnknownLogo is returned by Get for ids that were never registered.
var ErrUnknownLogo = errors.New("registry: unknown logo")

// Logo is a fixed multi-line glyph.
type Logo struct {
	ID    string
	Title string
	Lines []string
}

// Width returns the widest line in runes.
func (l Logo) Width() int {
	w := 0
	for _, line := range l.Lines {
		w = max(w, utf8.RuneCountInString(line))
	}
	return w
}

// Height returns the number of lines.
func (l Logo) Height() int {
	return len(l.Lines)
}

// LogoInfo contains metadata about a registered logo.
type LogoInfo struct {
	ID     string
	Title  string
	Width  int
	Height int
}

var (
	logos = make(map[string]Logo)
	mu    sync.RWMutex
)

// Register adds a logo to the registry.
// Typically called from an init() function.
// Panics on an empty or duplicate ID, or a logo without lines.
func Register(l Logo) {
	mu.Lock()
	defer mu.Unlock()

	if l.ID == "" {
		panic("registry: logo without ID")
	}
	if _, exists := logos[l.ID]; exists {
		panic(fmt.Sprintf("registry: logo %q already registered", l.ID))
	}
	if l.Height() == 0 || l.Width() == 0 {
		panic(fmt.Sprintf("registry: logo %q is empty", l.ID))
	}

	lines := make([]string, len(l.Lines))
	copy(lines, l.Lines)
	l.Lines = lines
	logos[l.ID] = l
}

// List returns information about all registered logos, sorted by ID.
func List() []LogoInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LogoInfo, 0, len(logos))
	for id, l := range logos {
		result = append(result, LogoInfo{
			ID:     id,
			Title:  l.Title,
			Width:  l.Width(),
			Height: l.Height(),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the logo registered under id.
func Get(id string) (Logo, error) {
	mu.RLock()
	defer mu.RUnlock()

	l, ok := logos[id]
	if !ok {
		return Logo{}, fmt.Errorf("%w %q", ErrUnknownLogo, id)
	}
	return l, nil
}
