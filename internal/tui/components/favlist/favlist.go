// Package favlist lists favorited phrases.
package favlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type JumpToMsg struct {
	Index int
}

type ToggleFavoriteMsg struct {
	Index int
}

type ShareMsg struct {
	Index int
}

type Item struct {
	Index  int
	Phrase string
}

func (i Item) Title() string       { return "♥ " + i.Phrase }
func (i Item) Description() string { return fmt.Sprintf("card %d", i.Index+1) }
func (i Item) FilterValue() string { return i.Phrase }

type KeyMap struct {
	Open    key.Binding
	Unfavor key.Binding
	Share   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open card"),
		),
		Unfavor: key.NewBinding(
			key.WithKeys("f", "x"),
			key.WithHelp("f", "unfavorite"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "share"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Favorites"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Unfavor, keys.Share}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Unfavor, keys.Share}
	}

	return Model{list: l, keys: keys}
}

// SetFavorites replaces the list with the phrases at indices.
func (m *Model) SetFavorites(indices []int, phrases []string) {
	items := make([]list.Item, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(phrases) {
			continue
		}
		items = append(items, Item{Index: i, Phrase: phrases[i]})
	}
	m.list.SetItems(items)
}

// Filtering reports whether the user is typing a filter.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Len() int {
	return len(m.list.Items())
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		i, ok := m.list.SelectedItem().(Item)
		if !ok {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Open):
			return m, func() tea.Msg { return JumpToMsg{Index: i.Index} }
		case key.Matches(msg, m.keys.Unfavor):
			return m, func() tea.Msg { return ToggleFavoriteMsg{Index: i.Index} }
		case key.Matches(msg, m.keys.Share):
			return m, func() tea.Msg { return ShareMsg{Index: i.Index} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && !m.Filtering() {
		return "\n  No favorites yet.\n  Press 'f' on a card to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
