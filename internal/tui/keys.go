package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the key bindings of the view.
type keyMap struct {
	Split         key.Binding
	Skip          key.Binding
	Undo          key.Binding
	Pause         key.Binding
	Reset         key.Binding
	ShowSuccesses key.Binding
	Details       key.Binding
	Quit          key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Split: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start/split"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "skip"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "undo"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		ShowSuccesses: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "reset/success"),
		),
		Details: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "details"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Split, k.Pause, k.Reset, k.ShowSuccesses, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Split, k.Skip, k.Undo, k.Pause, k.Reset},
		{k.ShowSuccesses, k.Details, k.Quit},
	}
}
