package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the key bindings of the checker screen.
// Every binding uses ctrl so plain keys always reach the password input.
type keyMap struct {
	Generate      key.Binding
	CopyInput     key.Binding
	CopyGenerated key.Binding
	ToggleMask    key.Binding
	Help          key.Binding
	Quit          key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Generate, k.CopyInput, k.ToggleMask, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Generate, k.CopyInput, k.CopyGenerated},
		{k.ToggleMask, k.Help, k.Quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "generate"),
		),
		CopyInput: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		CopyGenerated: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "copy generated"),
		),
		ToggleMask: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("ctrl+t", "show/hide"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// updateEnabled greys out bindings that currently do nothing
func (k *keyMap) updateEnabled(fr Frame) {
	k.CopyInput.SetEnabled(fr.CopyVisible)
	k.CopyGenerated.SetEnabled(fr.PanelVisible)
}
