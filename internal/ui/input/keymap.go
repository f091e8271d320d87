package input

import "github.com/charmbracelet/bubbles/key"

type Map struct {
	Quit   key.Binding
	Back   key.Binding
	Drawer key.Binding
	Up     key.Binding
	Down   key.Binding
	// PrevField and NextField move between form fields, leaving letters to the inputs.
	PrevField key.Binding
	NextField key.Binding
	Accept    key.Binding
	Help      key.Binding
	Settings  key.Binding
	Copy      key.Binding
	Refresh   key.Binding
}

var Default = Map{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "Quit"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "Back"),
	),
	Drawer: key.NewBinding(
		key.WithKeys("m", "tab"),
		key.WithHelp("m", "Menu"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑", "Up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓", "Down"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("up", "shift+tab"),
		key.WithHelp("↑", "Previous field"),
	),
	NextField: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "Next field"),
	),
	Accept: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "Select"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "Help"),
	),
	Settings: key.NewBinding(
		key.WithKeys("S"),
		key.WithHelp("S", "Settings"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "Copy user id"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Reload"),
	),
}
