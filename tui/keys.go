package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings of the preview.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Open    key.Binding
	Focus   key.Binding
	PrevTab key.Binding
	NextTab key.Binding
	Toggle  key.Binding
	Close   key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// defaultKeyMap returns the default key bindings.
func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Move down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Open window / select row"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Switch pane"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "Previous tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "Next tab"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "List/detail view"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "Close tab"),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Copy selected row"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "Toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Toggle, k.Close, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Focus},
		{k.Open, k.PrevTab, k.NextTab},
		{k.Toggle, k.Close, k.Copy},
		{k.Help, k.Quit},
	}
}
