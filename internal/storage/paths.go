package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/models"
)

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// IsJSONPath reports whether a config path selects the JSON store.
func IsJSONPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// ConfigDir returns the directory holding the database, logs, backups and
// the lock file.
func ConfigDir(p Provider) string {
	return filepath.Dir(p.GetConfigPath())
}

// ShareDir resolves the directory share cards are written to.
func ShareDir(p Provider, settings models.Settings) string {
	if settings.ShareDir != "" {
		if dir, err := ExpandPath(settings.ShareDir); err == nil {
			return dir
		}
		return settings.ShareDir
	}
	return filepath.Join(ConfigDir(p), constants.DefaultShareDirName)
}
