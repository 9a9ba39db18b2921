package system

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/julianstephens/nila/internal/cli"
	"github.com/julianstephens/nila/internal/storage"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path (.db or .json) to copy settings and saved data from." type:"path"`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()

	if c.Force {
		if err := ctx.RequireNoLiveTUI(); err != nil {
			return err
		}
		dbPath := ctx.Store.GetConfigPath()
		// Don't delete if it's the source (user error protection)
		if c.Source != "" {
			absDbPath, err := filepath.Abs(dbPath)
			if err == nil {
				dbPath = absDbPath
			}
			absSource, err := filepath.Abs(c.Source)
			if err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Fprintf(out, "Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Fprintf(out, "Initialized nila storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Fprintf(out, "Migrating data from: %s\n", c.Source)
		if err := c.migrateData(ctx, cli.OpenStore(c.Source)); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		fmt.Fprintln(out, "Migration completed successfully!")
	}

	return nil
}

func (c *InitCmd) migrateData(ctx *cli.Context, source storage.Provider) error {
	out := ctx.Stdout()

	if err := source.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer source.Close()

	fmt.Fprintln(out, "  Migrating settings...")
	settings, err := source.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings from source: %w", err)
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings to destination: %w", err)
	}

	fmt.Fprintln(out, "  Migrating saved values...")
	values, err := source.GetAllValues()
	if err != nil {
		return fmt.Errorf("failed to get values from source: %w", err)
	}
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		if err := ctx.Store.SetValue(k, values[k]); err != nil {
			return fmt.Errorf("failed to copy value %s: %w", k, err)
		}
	}
	fmt.Fprintf(out, "    Migrated %d values\n", len(keys))

	return nil
}
