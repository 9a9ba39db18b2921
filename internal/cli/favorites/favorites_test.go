package favorites

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/nila/internal/cli"
	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/storage/sqlite"
)

func setupTestCtx(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "nila.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	var out bytes.Buffer
	return &cli.Context{Store: store, Out: &out}, &out
}

func TestFavoriteListCmd_Empty(t *testing.T) {
	ctx, out := setupTestCtx(t)
	if err := (&FavoriteListCmd{}).Run(ctx); err != nil {
		t.Fatalf("favorite list failed: %v", err)
	}
	if strings.TrimSpace(out.String()) != "No favorites yet." {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestFavoriteToggleCmd(t *testing.T) {
	ctx, out := setupTestCtx(t)

	if err := (&FavoriteToggleCmd{Index: "4"}).Run(ctx); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	if strings.TrimSpace(out.String()) != constants.MsgFavoriteAdded {
		t.Errorf("toggle output = %q", out.String())
	}

	v, err := ctx.Store.GetValue(constants.KeyFavoriteIndices)
	if err != nil || string(v) != "[3]" {
		t.Errorf("stored favorites = %q, %v; want [3]", v, err)
	}

	out.Reset()
	if err := (&FavoriteListCmd{}).Run(ctx); err != nil {
		t.Fatalf("favorite list failed: %v", err)
	}
	want := "4. " + constants.DefaultPhrases[3]
	if !strings.Contains(out.String(), want) {
		t.Errorf("list output %q missing %q", out.String(), want)
	}

	out.Reset()
	if err := (&FavoriteToggleCmd{Index: "4"}).Run(ctx); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	if strings.TrimSpace(out.String()) != constants.MsgFavoriteRemoved {
		t.Errorf("second toggle output = %q", out.String())
	}
	v, _ = ctx.Store.GetValue(constants.KeyFavoriteIndices)
	if string(v) != "[]" {
		t.Errorf("stored favorites after removal = %q, want []", v)
	}
}

func TestFavoriteToggleCmd_OutOfRange(t *testing.T) {
	ctx, _ := setupTestCtx(t)
	n := len(constants.DefaultPhrases)
	for _, arg := range []string{"0", "99", "x"} {
		if err := (&FavoriteToggleCmd{Index: arg}).Run(ctx); err == nil {
			t.Errorf("expected error for index %q (deck of %d)", arg, n)
		}
	}
}
