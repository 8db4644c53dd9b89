package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Jump    key.Binding
	Next    key.Binding
	Prev    key.Binding
	Role    key.Binding
	Partner key.Binding
	Start   key.Binding
	Pause   key.Binding
	Reset   key.Binding
	Preset  key.Binding
	Up      key.Binding
	Down    key.Binding
	Toggle  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Jump:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "section")),
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev")),
		Role:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "role")),
		Partner: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "partner")),
		Start:   key.NewBinding(key.WithKeys("s", " "), key.WithHelp("s", "start")),
		Pause:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "pause")),
		Reset:   key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset")),
		Preset:  key.NewBinding(key.WithKeys("f", "g", "h"), key.WithHelp("f/g/h", "preset")),
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Toggle:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "toggle task")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Role, k.Start, k.Pause, k.Reset, k.Toggle, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Next, k.Prev},
		{k.Role, k.Partner},
		{k.Start, k.Pause, k.Reset, k.Preset},
		{k.Up, k.Down, k.Toggle},
		{k.Help, k.Quit},
	}
}

func presetIndex(s string) int {
	switch s {
	case "f":
		return 0
	case "g":
		return 1
	case "h":
		return 2
	default:
		return -1
	}
}
