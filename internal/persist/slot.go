package persist

import (
	"errors"

	"github.com/julianstephens/nila/internal/logger"
	"github.com/julianstephens/nila/internal/storage"
)

// Backend is the durable key-value store a Slot writes through.
type Backend interface {
	GetValue(key string) ([]byte, error)
	SetValue(key string, value []byte) error
}

// Slot binds a set of T to one key of a Backend.
type Slot[T Element] struct {
	backend Backend
	key     string
}

// NewSlot returns a slot for key on backend.
func NewSlot[T Element](backend Backend, key string) *Slot[T] {
	return &Slot[T]{backend: backend, key: key}
}

// Key returns the storage key of the slot.
func (s *Slot[T]) Key() string { return s.key }

// Load reads and decodes the slot. Read failures are logged and produce the
// empty set; a missing key is the normal first-run case and is not logged.
func (s *Slot[T]) Load() Set[T] {
	blob, err := s.backend.GetValue(s.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to read persisted set", "key", s.key, "error", err)
		}
		return Set[T]{}
	}
	set := Decode[T](blob)
	if len(blob) > 0 && set.Len() == 0 && string(blob) != "[]" {
		logger.Debug("Discarding unreadable persisted set", "key", s.key, "bytes", len(blob))
	}
	return set
}

// Save overwrites the slot with the full set. Failures are logged and
// otherwise ignored: the caller's in-memory set stays authoritative.
func (s *Slot[T]) Save(set Set[T]) {
	blob, err := Encode(set)
	if err != nil {
		logger.Warn("Failed to encode persisted set", "key", s.key, "error", err)
		return
	}
	if err := s.backend.SetValue(s.key, blob); err != nil {
		logger.Warn("Failed to write persisted set", "key", s.key, "error", err)
	}
}
