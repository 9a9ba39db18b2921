package storage

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/julianstephens/nila/internal/models"
)

// Store is the on-disk layout of a JSON-backed nila database.
type Store struct {
	Version  int               `json:"version"`
	Settings models.Settings   `json:"settings"`
	Values   map[string]string `json:"values"`
}

// JSONStore keeps the whole database in one human-readable file. Every write
// rewrites the file through a temp file and rename.
type JSONStore struct {
	path  string
	store *Store
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		// Already initialized; keep existing data.
		return s.Load()
	}

	settings := models.Settings{}
	models.ApplyDefaultSettings(&settings)
	s.store = &Store{
		Version:  1,
		Settings: settings,
		Values:   make(map[string]string),
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	if s.store != nil {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotInitialized
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	store := &Store{}
	if err := json.Unmarshal(data, store); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if store.Values == nil {
		store.Values = make(map[string]string)
	}
	s.store = store

	return nil
}

func (s *JSONStore) Close() error {
	s.store = nil
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	if s.store == nil {
		return models.Settings{}, ErrNotLoaded
	}
	settings := s.store.Settings
	models.ApplyDefaultSettings(&settings)
	return settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	s.store.Settings = settings
	return s.save()
}

func (s *JSONStore) GetValue(key string) ([]byte, error) {
	if s.store == nil {
		return nil, ErrNotLoaded
	}
	v, ok := s.store.Values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return []byte(v), nil
}

func (s *JSONStore) SetValue(key string, value []byte) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	s.store.Values[key] = string(value)
	return s.save()
}

func (s *JSONStore) DeleteValue(key string) error {
	if s.store == nil {
		return ErrNotLoaded
	}
	if _, ok := s.store.Values[key]; !ok {
		return nil
	}
	delete(s.store.Values, key)
	return s.save()
}

func (s *JSONStore) GetAllValues() (map[string][]byte, error) {
	if s.store == nil {
		return nil, ErrNotLoaded
	}
	out := make(map[string][]byte, len(s.store.Values))
	for k, v := range maps.All(s.store.Values) {
		out[k] = []byte(v)
	}
	return out, nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

var _ Provider = (*JSONStore)(nil)
