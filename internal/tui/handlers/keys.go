package handlers

import (
	"github.com/julianstephens/nila/internal/constants"
)

// Tabs lists the main views in display order.
var Tabs = []constants.SessionState{
	constants.StateDeck,
	constants.StateFavorites,
	constants.StateStreak,
	constants.StateProfile,
}

// TabTitle returns the label of a main view.
func TabTitle(s constants.SessionState) string {
	switch s {
	case constants.StateDeck:
		return "Deck"
	case constants.StateFavorites:
		return "Favorites"
	case constants.StateStreak:
		return "Streak"
	case constants.StateProfile:
		return "Profile"
	}
	return ""
}

// NextTab returns the view after s, wrapping around.
func NextTab(s constants.SessionState) constants.SessionState {
	return Tabs[(tabIndex(s)+1)%len(Tabs)]
}

// PrevTab returns the view before s, wrapping around.
func PrevTab(s constants.SessionState) constants.SessionState {
	return Tabs[(tabIndex(s)+len(Tabs)-1)%len(Tabs)]
}

func tabIndex(s constants.SessionState) int {
	for i, t := range Tabs {
		if t == s {
			return i
		}
	}
	return 0
}
