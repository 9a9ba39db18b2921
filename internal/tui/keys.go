package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Tab       key.Binding
	ShiftTab  key.Binding
	Quit      key.Binding
	Help      key.Binding
	Back      key.Binding
	Deck      key.Binding
	Favorites key.Binding
	Streak    key.Binding
	Profile   key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Quit, k.Help}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.ShiftTab, k.Quit, k.Help, k.Back},
		{k.Deck, k.Favorites, k.Streak, k.Profile},
	}
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to deck"),
		),
		Deck: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "deck"),
		),
		Favorites: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "favorites"),
		),
		Streak: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "streak"),
		),
		Profile: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "profile"),
		),
	}
}
