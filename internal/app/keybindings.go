package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for seltrack.
type KeyMap struct {
	// Movement within a pane
	Down         key.Binding
	Up           key.Binding
	HalfPageDown key.Binding
	HalfPageUp   key.Binding
	GotoBottom   key.Binding
	Select       key.Binding
	SwitchPane   key.Binding

	// History
	Back         key.Binding
	Forward      key.Binding
	DeleteEntry  key.Binding
	ClearHistory key.Binding

	// Assets
	NewAsset     key.Binding
	RenameAsset  key.Binding
	DestroyAsset key.Binding

	// Modes
	CommandMode key.Binding
	Leader      key.Binding
	Help        key.Binding
	ThemeCycle  key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default vim-style keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "move down"),
		),
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "move up"),
		),
		HalfPageDown: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("Ctrl+d", "half page down"),
		),
		HalfPageUp: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("Ctrl+u", "half page up"),
		),
		GotoBottom: key.NewBinding(
			key.WithKeys("G"),
			key.WithHelp("G", "go to bottom"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "select / jump"),
		),
		SwitchPane: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("Tab", "switch pane"),
		),
		Back: key.NewBinding(
			key.WithKeys("H", "alt+left"),
			key.WithHelp("H", "back"),
		),
		Forward: key.NewBinding(
			key.WithKeys("L", "alt+right"),
			key.WithHelp("L", "forward"),
		),
		DeleteEntry: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete history entry"),
		),
		ClearHistory: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear history"),
		),
		NewAsset: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new asset"),
		),
		RenameAsset: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "rename asset"),
		),
		DestroyAsset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "destroy asset"),
		),
		CommandMode: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "command mode"),
		),
		Leader: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("Space", "leader palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		ThemeCycle: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "next theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
