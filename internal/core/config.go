package core

import "time"

// Delay limits accepted by the runtime.
const (
	DefaultDelay = time.Second
	MinDelay     = 10 * time.Millisecond
	MaxDelay     = 10 * time.Second
)

// RuntimeConfig contains configuration passed to the screensaver at startup.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Delay   time.Duration // Pause between frames
	Seed    int64         // RNG seed, 0 means use current time in platform layer
}

// ClampDelay restricts d to [MinDelay, MaxDelay].
func ClampDelay(d time.Duration) time.Duration {
	if d < MinDelay {
		return MinDelay
	}
	if d > MaxDelay {
		return MaxDelay
	}
	return d
}
