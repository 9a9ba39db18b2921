package backups

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/nila/internal/backup"
	"github.com/julianstephens/nila/internal/cli"
	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/logger"
)

// confirmFunc is a package-level variable to allow mocking in tests.
var confirmFunc = func(title, description string) (bool, error) {
	var ok bool
	confirm := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Restore").
		Negative("Cancel").
		Value(&ok)
	err := huh.NewForm(huh.NewGroup(confirm)).
		WithTheme(huh.ThemeDracula()).
		Run()
	return ok, err
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backupPath, err := mgr.CreateBackup()
	if err != nil {
		return fmt.Errorf("backup failed: %w", err)
	}

	fmt.Fprintf(ctx.Stdout(), "✓ Backup created: %s\n", filepath.Base(backupPath))
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		fmt.Fprintln(out, "No backups found.")
		fmt.Fprintf(out, "Backups are stored in: %s\n", mgr.GetBackupDir())
		return nil
	}

	fmt.Fprintf(out, "Available backups (%d total, keeping most recent %d):\n\n", len(backups), constants.MaxBackups)
	for _, b := range backups {
		sizeKB := float64(b.Size) / 1024.0
		timestamp := b.Timestamp.Format("2006-01-02 15:04:05")
		fmt.Fprintf(out, "  %s  %s  (%.1f KB)\n", timestamp, filepath.Base(b.Path), sizeKB)
	}
	fmt.Fprintf(out, "\nBackup directory: %s\n", mgr.GetBackupDir())

	return nil
}

type BackupRestoreCmd struct {
	BackupFile string `arg:"" help:"Path or filename of the backup to restore."`
	Yes        bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	mgr := backup.NewManager(ctx.Store.GetConfigPath())

	backupPath, err := c.resolve(mgr)
	if err != nil {
		return err
	}

	if err := ctx.RequireNoLiveTUI(); err != nil {
		return err
	}

	if !c.Yes {
		ok, err := confirmFunc(
			"Restore "+filepath.Base(backupPath)+"?",
			"This replaces your current database. A backup of it is created first.",
		)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Restore cancelled.")
			return nil
		}
	}

	// Close the current store connection before restoring
	if err := ctx.Store.Close(); err != nil {
		logger.Warn("Failed to close database connection", "error", err)
	}

	preRestore, err := mgr.RestoreBackup(backupPath)
	if err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Fprintln(out, "✓ Database restored successfully!")
	if preRestore != "" {
		fmt.Fprintf(out, "  Previous database saved as: %s\n", filepath.Base(preRestore))
	}

	return ctx.Store.Load()
}

// resolve finds the backup as given, then inside the backup directory.
func (c *BackupRestoreCmd) resolve(mgr *backup.Manager) (string, error) {
	backupPath := c.BackupFile

	if filepath.IsAbs(backupPath) {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			return "", fmt.Errorf("backup file not found: %s", backupPath)
		}
		return backupPath, nil
	}

	if _, err := os.Stat(backupPath); err == nil {
		absPath, err := filepath.Abs(backupPath)
		if err != nil {
			return "", fmt.Errorf("failed to resolve backup path: %w", err)
		}
		return absPath, nil
	}

	possiblePath := filepath.Join(mgr.GetBackupDir(), c.BackupFile)
	if _, err := os.Stat(possiblePath); err == nil {
		return possiblePath, nil
	}
	return "", fmt.Errorf("backup file not found: tried current directory and %s", mgr.GetBackupDir())
}
