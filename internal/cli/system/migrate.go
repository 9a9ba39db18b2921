package system

import (
	"fmt"

	"github.com/julianstephens/nila/internal/cli"
	"github.com/julianstephens/nila/internal/storage/sqlite"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()

	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		fmt.Fprintln(out, "JSON storage has no schema. Nothing to migrate.")
		return nil
	}

	if err := ctx.RequireNoLiveTUI(); err != nil {
		return err
	}

	count, err := sqliteStore.Migrate(func(msg string) {
		fmt.Fprintln(out, msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Fprintln(out, "No migrations to apply. Database is up to date.")
	} else {
		fmt.Fprintf(out, "\nSuccessfully applied %d migration(s).\n", count)
	}

	return nil
}
