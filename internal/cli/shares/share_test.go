package shares

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/nila/internal/cli"
	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/storage"
)

func setupTestCtx(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "nila.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	var out bytes.Buffer
	return &cli.Context{Store: store, Out: &out}, &out
}

func TestShareCmd_WritesCard(t *testing.T) {
	ctx, out := setupTestCtx(t)
	dir := t.TempDir()

	cmd := &ShareCmd{Index: "1", Out: dir, Density: 1, NoClipboard: true}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("share failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one card in %s, got %d", dir, len(entries))
	}
	name := entries[0].Name()
	if !strings.HasPrefix(name, constants.ShareFilePrefix) || !strings.HasSuffix(name, constants.ShareFileSuffix) {
		t.Errorf("unexpected card name %q", name)
	}
	if !strings.Contains(out.String(), name) {
		t.Errorf("output does not name the card:\n%s", out.String())
	}
	if strings.Contains(out.String(), constants.MsgShareCopied) {
		t.Errorf("clipboard used despite --no-clipboard")
	}

	f, err := os.Open(filepath.Join(dir, name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("card is not a PNG: %v", err)
	}
	if cfg.Width != constants.ShareCardWidth || cfg.Height != constants.ShareCardHeight {
		t.Errorf("card size = %dx%d at density 1", cfg.Width, cfg.Height)
	}
}

func TestShareCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		cmd  *ShareCmd
	}{
		{"index out of range", &ShareCmd{Index: "99", NoClipboard: true}},
		{"density too high", &ShareCmd{Index: "1", Density: 10, NoClipboard: true}},
		{"negative density", &ShareCmd{Index: "1", Density: -1, NoClipboard: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _ := setupTestCtx(t)
			tt.cmd.Out = t.TempDir()
			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("expected error")
			}
		})
	}
}
