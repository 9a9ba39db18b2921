package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/nila/internal/lock"
	"github.com/julianstephens/nila/internal/storage"
	"github.com/julianstephens/nila/internal/storage/sqlite"
)

func TestOpenStore(t *testing.T) {
	if _, ok := OpenStore("/tmp/nila.json").(*storage.JSONStore); !ok {
		t.Error("expected JSON store for .json path")
	}
	if _, ok := OpenStore("/tmp/nila.db").(*sqlite.Store); !ok {
		t.Error("expected SQLite store for .db path")
	}
}

func TestLoadPhrases(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr bool
	}{
		{"lines", "I am calm\nI am kind\n", []string{"I am calm", "I am kind"}, false},
		{"blank lines skipped", "\n  I am calm  \n\n\tI am kind\n\n", []string{"I am calm", "I am kind"}, false},
		{"empty", "", nil, true},
		{"only blanks", "\n \n\t\n", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "phrases.txt")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			got, err := LoadPhrases(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadPhrases() error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LoadPhrases() mismatch (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := LoadPhrases(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		arg     string
		want    int
		wantErr bool
	}{
		{"1", 0, false},
		{"12", 11, false},
		{" 3 ", 2, false},
		{"0", 0, true},
		{"13", 0, true},
		{"-1", 0, true},
		{"x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := ParseIndex(tt.arg, 12)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseIndex(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseIndex(%q) = %d, want %d", tt.arg, got, tt.want)
			}
		})
	}
}

func TestNewState(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nila.db")
	store := sqlite.NewStore(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	now := time.Date(2024, 5, 8, 10, 0, 0, 0, time.UTC)
	ctx := &Context{
		Store:   store,
		Phrases: []string{"one", "two"},
		Now:     func() time.Time { return now },
	}

	st, err := ctx.NewState()
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	if st.Deck().Len() != 2 {
		t.Errorf("deck length = %d, want 2", st.Deck().Len())
	}

	opts, err := ctx.StateOptions()
	if err != nil {
		t.Fatalf("StateOptions failed: %v", err)
	}
	wantDir := filepath.Join(filepath.Dir(dbPath), "shares")
	if opts.Exporter.Dir != wantDir {
		t.Errorf("share dir = %q, want %q", opts.Exporter.Dir, wantDir)
	}
}

func TestRequireNoLiveTUI(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewJSONStore(filepath.Join(dir, "nila.json"))
	ctx := &Context{Store: store}

	if err := ctx.RequireNoLiveTUI(); err != nil {
		t.Fatalf("unexpected error without lock: %v", err)
	}

	// A lock held by this very process is live.
	l, err := lock.Acquire(dir)
	if err != nil {
		t.Fatalf("Acquire failed: %v", err)
	}
	err = ctx.RequireNoLiveTUI()
	if !errors.Is(err, lock.ErrLocked) {
		t.Errorf("expected ErrLocked while locked, got %v", err)
	}

	if err := l.Release(); err != nil {
		t.Fatalf("Release failed: %v", err)
	}
	if err := ctx.RequireNoLiveTUI(); err != nil {
		t.Errorf("unexpected error after release: %v", err)
	}
}
