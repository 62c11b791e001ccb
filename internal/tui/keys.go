package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the client reacts to.
type KeyMap struct {
	Menu     key.Binding
	Pin      key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Select   key.Binding
	Expand   key.Binding
	Back     key.Binding
	Confirm  key.Binding
	Cancel   key.Binding
	CopyID   key.Binding
	Quit     key.Binding
	QuickOne key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Menu:    key.NewBinding(key.WithKeys("tab", "m"), key.WithHelp("tab", "menu")),
		Pin:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pin drawer")),
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Select:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Expand:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "details")),
		Back:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Confirm: key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
		CopyID:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy session id")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		QuickOne: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "quick floor switch"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Select, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Expand, k.QuickOne, k.Back},
		{k.Menu, k.Pin, k.CopyID, k.Quit},
	}
}
