package core

// Action represents a semantic user action, abstracted from physical key presses.
type Action int

const (
	ActionNone   Action = iota
	ActionPause         // P, Space - freeze the logo
	ActionHelp          // ? - toggle key help
	ActionFaster        // +, = - halve the delay
	ActionSlower        // -, _ - double the delay
	ActionQuit          // Q, Ctrl+C - exit
)
