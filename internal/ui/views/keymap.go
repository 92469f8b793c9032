package views

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap describes the bindings shown in the short help bar
type KeyMap struct {
	Move     key.Binding
	Visual   key.Binding
	Yank     key.Binding
	Open     key.Binding
	Cancel   key.Binding
	Help     key.Binding
	Quit     key.Binding
	inVisual bool
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Move: key.NewBinding(
			key.WithKeys("j", "k", "up", "down"),
			key.WithHelp("j/k", "move"),
		),
		Visual: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "visual"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ForMode returns the keymap with visual-mode bindings surfaced
func (k KeyMap) ForMode(visual bool) KeyMap {
	k.inVisual = visual
	return k
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	if k.inVisual {
		return []key.Binding{k.Move, k.Yank, k.Cancel, k.Help, k.Quit}
	}
	return []key.Binding{k.Move, k.Visual, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Visual, k.Open},
		{k.Yank, k.Cancel},
		{k.Help, k.Quit},
	}
}
