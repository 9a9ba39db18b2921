package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/storage"
	"github.com/julianstephens/nila/internal/storage/sqlite"
)

// setupTestDB creates an initialized SQLite store holding one favorites slot.
func setupTestDB(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "nila.db")

	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.SetValue("favoriteIndices", []byte("[0,3]")); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}
	return dbPath
}

// fakeClock returns a clock that advances one second per call.
func fakeClock() func() time.Time {
	now := time.Date(2024, 5, 8, 9, 0, 0, 0, time.Local)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func readValue(t *testing.T, dbPath, key string) string {
	t.Helper()
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	defer store.Close()

	v, err := store.GetValue(key)
	if err != nil {
		t.Fatalf("GetValue(%q) failed: %v", key, err)
	}
	return string(v)
}

func writeValue(t *testing.T, dbPath, key, value string) {
	t.Helper()
	store := sqlite.NewStore(dbPath)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	defer store.Close()

	if err := store.SetValue(key, []byte(value)); err != nil {
		t.Fatalf("SetValue(%q) failed: %v", key, err)
	}
}

func TestCreateBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = fakeClock()

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	if _, err := os.Stat(backupPath); err != nil {
		t.Fatalf("backup file was not created: %v", err)
	}
	name := filepath.Base(backupPath)
	if !strings.HasPrefix(name, constants.BackupFilePrefix) || !strings.HasSuffix(name, ".db") {
		t.Errorf("unexpected backup name %q", name)
	}
	if got := readValue(t, backupPath, "favoriteIndices"); got != "[0,3]" {
		t.Errorf("backup favoriteIndices = %q, want [0,3]", got)
	}
}

func TestCreateBackupMissingDatabase(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.db"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error for missing database")
	}
}

func TestBackupRotation(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = fakeClock()

	for i := 0; i < constants.MaxBackups+5; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != constants.MaxBackups {
		t.Errorf("expected %d backups after rotation, got %d", constants.MaxBackups, len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Errorf("backups are not sorted newest first at %d", i)
		}
	}
}

func TestListBackups(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = fakeClock()

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected 0 backups initially, got %d", len(backups))
	}

	for i := 0; i < 3; i++ {
		if _, err := mgr.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
	}
	// Unrelated files in the backup directory are ignored.
	if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), "notes.txt"), []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	backups, err = mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 3 {
		t.Fatalf("expected 3 backups, got %d", len(backups))
	}
	for _, b := range backups {
		if b.Path == "" || b.Size == 0 || b.Timestamp.IsZero() {
			t.Errorf("incomplete backup info: %+v", b)
		}
	}
}

func TestRestoreBackup(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	mgr.now = fakeClock()

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	writeValue(t, dbPath, "favoriteIndices", "[1]")

	preRestore, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}
	if preRestore == "" {
		t.Fatal("expected a pre-restore backup path")
	}

	if got := readValue(t, dbPath, "favoriteIndices"); got != "[0,3]" {
		t.Errorf("restored favoriteIndices = %q, want [0,3]", got)
	}
	if got := readValue(t, preRestore, "favoriteIndices"); got != "[1]" {
		t.Errorf("pre-restore favoriteIndices = %q, want [1]", got)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 2 {
		t.Errorf("expected 2 backups after restore, got %d", len(backups))
	}
}

func TestRestoreBackupRejectsInvalid(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)

	tests := []struct {
		name    string
		content []byte
	}{
		{"garbage", []byte("not a database")},
		{"missing", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.db")
			if tt.content != nil {
				if err := os.WriteFile(path, tt.content, 0600); err != nil {
					t.Fatal(err)
				}
			}
			if _, err := mgr.RestoreBackup(path); err == nil {
				t.Error("expected restore to fail")
			}
			if got := readValue(t, dbPath, "favoriteIndices"); got != "[0,3]" {
				t.Errorf("database changed after failed restore: %q", got)
			}
		})
	}
}

func TestUniqueBackupFilenames(t *testing.T) {
	dbPath := setupTestDB(t)
	mgr := NewManager(dbPath)
	fixed := time.Date(2024, 5, 8, 9, 0, 0, 0, time.Local)
	mgr.now = func() time.Time { return fixed }

	paths := make(map[string]bool)
	for i := 0; i < 5; i++ {
		backupPath, err := mgr.CreateBackup()
		if err != nil {
			t.Fatalf("CreateBackup #%d failed: %v", i, err)
		}
		filename := filepath.Base(backupPath)
		if paths[filename] {
			t.Errorf("duplicate backup filename: %s", filename)
		}
		paths[filename] = true
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 5 {
		t.Errorf("expected counter-suffixed backups to be listed, got %d", len(backups))
	}
}

func TestJSONStoreBackup(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "nila.json")
	store := storage.NewJSONStore(configPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.SetValue("streakMarkedDates", []byte(`["2024-05-06"]`)); err != nil {
		t.Fatalf("SetValue failed: %v", err)
	}

	mgr := NewManager(configPath)
	mgr.now = fakeClock()

	backupPath, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if !strings.HasSuffix(backupPath, ".json") {
		t.Errorf("JSON backup should keep the .json suffix, got %s", backupPath)
	}

	if err := os.WriteFile(configPath, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected backup of corrupt JSON store to fail")
	}

	if _, err := mgr.RestoreBackup(backupPath); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	restored := storage.NewJSONStore(configPath)
	if err := restored.Load(); err != nil {
		t.Fatalf("Load after restore failed: %v", err)
	}
	v, err := restored.GetValue("streakMarkedDates")
	if err != nil {
		t.Fatalf("GetValue failed: %v", err)
	}
	if string(v) != `["2024-05-06"]` {
		t.Errorf("restored value = %s", v)
	}
}
