// Package profile persists the user's profile fields, one durable key each.
package profile

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/logger"
	"github.com/julianstephens/nila/internal/models"
	"github.com/julianstephens/nila/internal/persist"
	"github.com/julianstephens/nila/internal/storage"
)

// Store reads and writes profile fields through a key-value backend.
type Store struct {
	backend persist.Backend
	now     func() time.Time
}

// NewStore returns a profile store over backend. now supplies the date of
// birth shown before one has been saved; nil means time.Now.
func NewStore(backend persist.Backend, now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}
	return &Store{backend: backend, now: now}
}

// Load reads every field. Missing fields read as empty, and a missing or
// unreadable date of birth reads as the current time.
func (s *Store) Load() models.Profile {
	p := models.Profile{
		Name:  s.readString(constants.KeyProfileName),
		Email: s.readString(constants.KeyProfileEmail),
	}

	dob, ok := parseDOB(s.readString(constants.KeyProfileDOB))
	if !ok {
		dob = s.now()
	}
	p.DateOfBirth = dob
	return p
}

func (s *Store) readString(key string) string {
	blob, err := s.backend.GetValue(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("Failed to read profile field", "key", key, "error", err)
		}
		return ""
	}
	return string(blob)
}

// SetName persists the name field.
func (s *Store) SetName(name string) error {
	return s.write(constants.KeyProfileName, name)
}

// SetEmail persists the email field. Invalid addresses are stored as typed.
func (s *Store) SetEmail(email string) error {
	return s.write(constants.KeyProfileEmail, email)
}

// SetDateOfBirth persists dob as fractional unix seconds.
func (s *Store) SetDateOfBirth(dob time.Time) error {
	return s.write(constants.KeyProfileDOB, formatDOB(dob))
}

// Save persists every field of p.
func (s *Store) Save(p models.Profile) error {
	return errors.Join(
		s.SetName(p.Name),
		s.SetEmail(p.Email),
		s.SetDateOfBirth(p.DateOfBirth),
	)
}

func (s *Store) write(key, value string) error {
	if err := s.backend.SetValue(key, []byte(value)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func formatDOB(t time.Time) string {
	secs := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return strconv.FormatFloat(secs, 'f', -1, 64)
}

func parseDOB(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	secs, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(secs) || math.IsInf(secs, 0) {
		logger.Debug("Ignoring unreadable date of birth", "value", text)
		return time.Time{}, false
	}
	whole, frac := math.Modf(secs)
	return time.Unix(int64(whole), int64(frac*1e9)), true
}
