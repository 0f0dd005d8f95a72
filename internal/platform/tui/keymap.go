package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Command is what a key does to the simulated board.
type Command int

const (
	CommandNone   Command = iota
	CommandPress          // Tap the button with the switches unchanged
	CommandLeft           // Set switch 0, then tap
	CommandRight          // Clear switch 0, then tap
	CommandToggle         // Flip one switch
	CommandQuit
)

// KeyMap defines the frontend key bindings.
type KeyMap struct {
	Press  key.Binding
	Left   key.Binding
	Right  key.Binding
	Switch key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Left, k.Right, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Press, k.Left, k.Right},
		{k.Switch, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Press: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "button"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "l"),
			key.WithHelp("left/l", "turn left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "r"),
			key.WithHelp("right/r", "turn right"),
		),
		Switch: key.NewBinding(
			key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("0-9", "toggle switch"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MapKey translates a key message to a board command. For CommandToggle
// the second result is the switch number.
func (k KeyMap) MapKey(msg tea.KeyMsg) (Command, int) {
	switch {
	case key.Matches(msg, k.Quit):
		return CommandQuit, 0
	case key.Matches(msg, k.Press):
		return CommandPress, 0
	case key.Matches(msg, k.Left):
		return CommandLeft, 0
	case key.Matches(msg, k.Right):
		return CommandRight, 0
	case key.Matches(msg, k.Switch):
		return CommandToggle, int(msg.String()[0] - '0')
	}
	return CommandNone, 0
}
