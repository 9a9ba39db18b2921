package storage

import "github.com/julianstephens/nila/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Values are the durable key-value slots backing favorites, streak
	// dates and profile fields. GetValue returns ErrNotFound for a key that
	// was never written. SetValue overwrites the whole value.
	GetValue(key string) ([]byte, error)
	SetValue(key string, value []byte) error
	DeleteValue(key string) error
	// GetAllValues is used by debug dumps and store-to-store migration.
	GetAllValues() (map[string][]byte, error)

	// Utils
	GetConfigPath() string
}
