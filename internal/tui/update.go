package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/logger"
	"github.com/julianstephens/nila/internal/tui/components/card"
	"github.com/julianstephens/nila/internal/tui/components/favlist"
	"github.com/julianstephens/nila/internal/tui/components/toast"
	"github.com/julianstephens/nila/internal/tui/components/week"
	"github.com/julianstephens/nila/internal/tui/handlers"
	"github.com/julianstephens/nila/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.state.Toast().Token

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
		return m, nil

	case toast.DismissMsg:
		m.state.DismissToast(msg.Token)
		return m, nil

	case clockTickMsg:
		m.refresh()
		return m, tickClock()

	// Deck intents
	case card.PreviousMsg:
		m.state.Previous()
	case card.NextMsg:
		m.state.Next()
	case card.ShuffleMsg:
		m.state.Shuffle()
	case card.ToggleFavoriteMsg:
		m.state.ToggleFavorite()
	case card.ShareMsg:
		m.state.ShareCurrent()

	// Favorites intents
	case favlist.JumpToMsg:
		m.state.JumpTo(msg.Index)
		m.session = constants.StateDeck
	case favlist.ToggleFavoriteMsg:
		m.state.ToggleFavoriteAt(msg.Index)
	case favlist.ShareMsg:
		m.state.Share(msg.Index)

	// Streak intents
	case week.MarkTodayMsg:
		m.state.MarkToday()

	case tea.KeyMsg:
		return m.handleKey(msg)

	default:
		return m.forward(msg)
	}

	m.refresh()
	return m, m.toastCmd(before)
}

// toastCmd schedules dismissal when the last intent showed a new toast.
func (m Model) toastCmd(before uint64) tea.Cmd {
	t := m.state.Toast()
	if !t.Visible || t.Token == before {
		return nil
	}
	return toast.Schedule(t.Token)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The profile form owns the keyboard; only esc and ctrl+c escape it.
	if m.session == constants.StateProfile {
		switch {
		case msg.Type == tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.closeProfile()
			return m, nil
		}
		return m.forward(msg)
	}

	if m.session == constants.StateFavorites && m.favorites.Filtering() {
		return m.forward(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		return m.switchTo(handlers.NextTab(m.session))
	case key.Matches(msg, m.keys.ShiftTab):
		return m.switchTo(handlers.PrevTab(m.session))
	case key.Matches(msg, m.keys.Deck):
		return m.switchTo(constants.StateDeck)
	case key.Matches(msg, m.keys.Favorites):
		return m.switchTo(constants.StateFavorites)
	case key.Matches(msg, m.keys.Streak):
		return m.switchTo(constants.StateStreak)
	case key.Matches(msg, m.keys.Profile):
		return m.switchTo(constants.StateProfile)
	case key.Matches(msg, m.keys.Back):
		return m.switchTo(constants.StateDeck)
	}

	return m.forward(msg)
}

// forward hands msg to the component of the active view.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.session {
	case constants.StateDeck:
		m.card, cmd = m.card.Update(msg)
	case constants.StateFavorites:
		m.favorites, cmd = m.favorites.Update(msg)
	case constants.StateStreak:
		m.week, cmd = m.week.Update(msg)
	case constants.StateProfile:
		return m.updateProfile(msg)
	}
	return m, cmd
}

func (m Model) switchTo(s constants.SessionState) (tea.Model, tea.Cmd) {
	if s == m.session {
		return m, nil
	}
	if m.session == constants.StateProfile {
		m.closeProfile()
	}
	m.session = s
	logger.Debug("Switched view", "view", handlers.TabTitle(s))

	if s == constants.StateProfile {
		m.profileForm = handlers.NewProfileFormModel(m.state.Profile())
		m.form = handlers.NewProfileForm(m.profileForm)
		return m, m.form.Init()
	}
	m.refresh()
	return m, nil
}

func (m *Model) closeProfile() {
	m.syncProfile()
	m.form = nil
	m.profileForm = nil
	m.session = constants.StateDeck
	m.refresh()
}

func (m Model) updateProfile(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		return m, nil
	}
	before := m.state.Toast().Token

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	m.syncProfile()

	switch m.form.State {
	case huh.StateCompleted:
		m.state.ShowToast(constants.MsgProfileSaved)
		m.closeProfile()
		return m, tea.Batch(cmd, m.toastCmd(before))
	case huh.StateAborted:
		m.closeProfile()
	}
	return m, cmd
}

// syncProfile persists every form field that differs from app state. Fields
// are saved as typed; an invalid email is kept, an invalid date is not.
func (m *Model) syncProfile() {
	fm := m.profileForm
	if fm == nil {
		return
	}
	p := m.state.Profile()
	if fm.Name != p.Name {
		m.state.SetName(fm.Name)
	}
	if fm.Email != p.Email {
		m.state.SetEmail(fm.Email)
	}
	loc := m.state.Today().Location()
	if dob, ok := handlers.ParseDOB(fm.DOB, loc); ok && utils.DateKey(dob) != utils.DateKey(p.DateOfBirth.In(loc)) {
		m.state.SetDateOfBirth(dob)
	}
}
