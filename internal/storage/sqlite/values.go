package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/nila/internal/storage"
)

func (s *Store) GetValue(key string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrNotLoaded
	}
	var value []byte
	err := s.db.QueryRow("SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", storage.ErrNotFound, key)
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetValue(key string, value []byte) error {
	if s.db == nil {
		return storage.ErrNotLoaded
	}
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, ?)",
		key, value, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *Store) DeleteValue(key string) error {
	if s.db == nil {
		return storage.ErrNotLoaded
	}
	if _, err := s.db.Exec("DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

func (s *Store) GetAllValues() (map[string][]byte, error) {
	if s.db == nil {
		return nil, storage.ErrNotLoaded
	}
	rows, err := s.db.Query("SELECT key, value FROM kv ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	values := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		values[key] = value
	}
	return values, rows.Err()
}
