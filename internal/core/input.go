package core

// KeyCode identifies a physical key the way browser keyboard events do.
// Hosts translate their native key events into these codes.
type KeyCode string

// Key codes recognised by the simulation. Any other code is ignored.
const (
	KeyArrowLeft  KeyCode = "ArrowLeft"
	KeyArrowRight KeyCode = "ArrowRight"
	KeySpace      KeyCode = "Space"
)

// KeyEdge tells whether a key went down or came back up.
type KeyEdge int

const (
	KeyDown KeyEdge = iota
	KeyUp
)

// String returns a human-readable name for the edge.
func (e KeyEdge) String() string {
	switch e {
	case KeyDown:
		return "Down"
	case KeyUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// Action represents a host-level intent that never reaches the simulation
// (the scene only understands key codes).
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - pause/unpause
	ActionRestart        // R - rebuild the scene
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
