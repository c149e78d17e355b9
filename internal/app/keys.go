package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the chart viewer key bindings.
type KeyMap struct {
	Quit   key.Binding
	Up     key.Binding
	Down   key.Binding
	Enter  key.Binding
	Filter key.Binding
	Clear  key.Binding
	Copy   key.Binding
	Help   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Enter:  key.NewBinding(key.WithKeys("enter")),
		Filter: key.NewBinding(key.WithKeys("/")),
		Clear:  key.NewBinding(key.WithKeys("esc")),
		Copy:   key.NewBinding(key.WithKeys("y")),
		Help:   key.NewBinding(key.WithKeys("?")),
	}
}
