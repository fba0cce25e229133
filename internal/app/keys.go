package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard bindings for the TUI.
type KeyMap struct {
	Up              key.Binding
	Down            key.Binding
	PrevParticipant key.Binding
	NextParticipant key.Binding
	Signup          key.Binding
	Remove          key.Binding
	Refresh         key.Binding
	Auth            key.Binding
	Help            key.Binding
	Debug           key.Binding
	Escape          key.Binding
	Quit            key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "prev activity"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/k", "activity"),
		),
		PrevParticipant: key.NewBinding(
			key.WithKeys("K", "shift+up"),
			key.WithHelp("K", "prev participant"),
		),
		NextParticipant: key.NewBinding(
			key.WithKeys("J", "shift+down"),
			key.WithHelp("J/K", "participant"),
		),
		Signup: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "register"),
		),
		Remove: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "unregister"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Auth: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "login"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Debug: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "event log"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// FooterHelp lists the bindings shown in the main-screen footer, in
// display order.
func (k KeyMap) FooterHelp() []key.Binding {
	return []key.Binding{
		k.Down, k.NextParticipant, k.Signup, k.Remove,
		k.Auth, k.Refresh, k.Help, k.Quit,
	}
}
