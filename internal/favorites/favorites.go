// Package favorites tracks which deck positions the user has starred.
package favorites

import (
	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/persist"
)

// Model is the set of favorited phrase indices, persisted as a whole on
// every change.
type Model struct {
	slot *persist.Slot[int]
	set  persist.Set[int]
}

// New returns an empty model bound to backend. Call Load before use.
func New(backend persist.Backend) *Model {
	return &Model{
		slot: persist.NewSlot[int](backend, constants.KeyFavoriteIndices),
		set:  persist.Set[int]{},
	}
}

// Load reads persisted favorites and drops indices outside [0, deckLen).
func (m *Model) Load(deckLen int) {
	m.set = m.slot.Load().Filter(func(i int) bool {
		return i >= 0 && i < deckLen
	})
}

// IsFavorite reports whether index is favorited.
func (m *Model) IsFavorite(index int) bool {
	return m.set.Contains(index)
}

// Toggle flips membership of index, persists the full set and returns the
// toast message describing the change.
func (m *Model) Toggle(index int) string {
	msg := constants.MsgFavoriteAdded
	if !m.set.Add(index) {
		m.set.Remove(index)
		msg = constants.MsgFavoriteRemoved
	}
	m.slot.Save(m.set)
	return msg
}

// Indices returns favorited indices in ascending order.
func (m *Model) Indices() []int {
	return m.set.Sorted()
}

// Len returns the number of favorites.
func (m *Model) Len() int {
	return m.set.Len()
}
