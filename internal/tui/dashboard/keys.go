package dashboard

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists the bindings of the field list. Forms and prompts handle
// their own keys while they are open.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevProp   key.Binding
	NextProp   key.Binding
	Edit       key.Binding
	MoveUp     key.Binding
	MoveDown   key.Binding
	NewField   key.Binding
	Visibility key.Binding
	Copy       key.Binding
	Import     key.Binding
	Export     key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous field"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next field"),
		),
		PrevProp: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous property"),
		),
		NextProp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next property"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit property"),
		),
		MoveUp: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "move field up"),
		),
		MoveDown: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J", "move field down"),
		),
		NewField: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new field"),
		),
		Visibility: key.NewBinding(
			key.WithKeys("tab", "v"),
			key.WithHelp("tab", "visible properties"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy JSON"),
		),
		Import: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "import file"),
		),
		Export: key.NewBinding(
			key.WithKeys("ctrl+e", "ctrl+s"),
			key.WithHelp("ctrl+e", "export file"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.NewField, k.Copy, k.Visibility, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevProp, k.NextProp},
		{k.Edit, k.MoveUp, k.MoveDown, k.NewField},
		{k.Visibility, k.Copy, k.Import, k.Export},
		{k.Help, k.Quit},
	}
}
