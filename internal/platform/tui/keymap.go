package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Fire    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Pause, k.Restart, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h", "a"),
			key.WithHelp("←/h", "move left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", "d"),
			key.WithHelp("→/l", "move right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "k", "w"),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages into simulation key codes
// and host actions. This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultKeyMap()}
}

// MapKey translates a key message. At most one of code and action is set;
// an unbound key yields ("", ActionNone).
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (code core.KeyCode, action core.Action) {
	switch {
	case key.Matches(msg, km.Keys.Quit):
		return "", core.ActionQuit
	case key.Matches(msg, km.Keys.Pause):
		return "", core.ActionPause
	case key.Matches(msg, km.Keys.Restart):
		return "", core.ActionRestart
	case key.Matches(msg, km.Keys.Left):
		return core.KeyArrowLeft, core.ActionNone
	case key.Matches(msg, km.Keys.Right):
		return core.KeyArrowRight, core.ActionNone
	case key.Matches(msg, km.Keys.Fire):
		return core.KeySpace, core.ActionNone
	}
	return "", core.ActionNone
}
