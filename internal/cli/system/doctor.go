package system

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/julianstephens/nila/internal/backup"
	"github.com/julianstephens/nila/internal/cli"
	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/lock"
	"github.com/julianstephens/nila/internal/logger"
	"github.com/julianstephens/nila/internal/models"
	"github.com/julianstephens/nila/internal/storage"
	"github.com/julianstephens/nila/internal/storage/sqlite"
	"github.com/julianstephens/nila/internal/utils"
)

type DoctorCmd struct{}

type check struct {
	name string
	run  func(*cli.Context) error
	// needsDB checks are skipped when the database cannot be loaded.
	needsDB bool
	// warnOnly failures do not fail the command.
	warnOnly bool
}

var checks = []check{
	{name: "Schema version", run: checkSchemaVersion, needsDB: true},
	{name: "Migrations complete", run: checkMigrationsComplete, needsDB: true},
	{name: "Settings", run: checkSettings, needsDB: true},
	{name: "Saved data", run: checkSavedData, needsDB: true},
	{name: "Backups present", run: checkBackupsPresent, warnOnly: true},
	{name: "TUI lock", run: checkLock, warnOnly: true},
	{name: "Clock/timezone", run: checkClockTimezone},
}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	out := ctx.Stdout()
	fmt.Fprintln(out, "Running diagnostics...")
	fmt.Fprintln(out)

	hasError := false
	dbReachable := false

	if err := checkDBReachable(ctx); err != nil {
		report(out, "Database reachable", err, false)
		hasError = true
	} else {
		fmt.Fprintf(out, "✓ Database reachable: OK\n")
		dbReachable = true
	}

	for _, c := range checks {
		if c.needsDB && !dbReachable {
			fmt.Fprintf(out, "⊘ %s: SKIPPED (database not reachable)\n", c.name)
			continue
		}
		err := c.run(ctx)
		report(out, c.name, err, c.warnOnly)
		if err != nil && !c.warnOnly {
			hasError = true
		}
	}

	fmt.Fprintf(out, "\nLog file: %s\n", logger.LogPath(storage.ConfigDir(ctx.Store)))

	fmt.Fprintln(out)
	if hasError {
		fmt.Fprintln(out, "Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Fprintln(out, "All diagnostics passed!")
	return nil
}

func report(out io.Writer, name string, err error, warnOnly bool) {
	switch {
	case err == nil:
		fmt.Fprintf(out, "✓ %s: OK\n", name)
	case warnOnly:
		fmt.Fprintf(out, "⚠ %s: WARNING\n", name)
		fmt.Fprintf(out, "   %v\n", err)
	default:
		fmt.Fprintf(out, "❌ %s: FAIL\n", name)
		fmt.Fprintf(out, "   Error: %v\n", err)
	}
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*sqlite.Store); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}

	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// JSON store doesn't have schema version
		return nil
	}

	current, latest, err := sqliteStore.SchemaVersions()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	return nil
}

func checkMigrationsComplete(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil
	}

	current, latest, err := sqliteStore.SchemaVersions()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'nila migrate')", current, latest)
	}
	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	for key, value := range models.SettingsToMap(settings) {
		if key == constants.SettingPixelDensity && settings.PixelDensity == 0 {
			continue
		}
		if key == constants.SettingTimezone && value == "" {
			continue
		}
		if err := models.ValidateSetting(key, value); err != nil {
			return err
		}
	}
	return nil
}

// checkSavedData reports slots the app would silently discard on load.
func checkSavedData(ctx *cli.Context) error {
	var errs []error

	if raw, err := ctx.Store.GetValue(constants.KeyFavoriteIndices); err == nil {
		var indices []int
		if err := json.Unmarshal(raw, &indices); err != nil {
			errs = append(errs, fmt.Errorf("%s is not a list of numbers", constants.KeyFavoriteIndices))
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		errs = append(errs, err)
	}

	if raw, err := ctx.Store.GetValue(constants.KeyStreakMarkedDates); err == nil {
		var keys []string
		if err := json.Unmarshal(raw, &keys); err != nil {
			errs = append(errs, fmt.Errorf("%s is not a list of dates", constants.KeyStreakMarkedDates))
		} else {
			for _, k := range keys {
				if !utils.ValidDateKey(k) {
					errs = append(errs, fmt.Errorf("%s has invalid date %q", constants.KeyStreakMarkedDates, k))
				}
			}
		}
	} else if !errors.Is(err, storage.ErrNotFound) {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func checkBackupsPresent(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'nila backup create'")
	}

	return nil
}

func checkLock(ctx *cli.Context) error {
	holder, err := lock.Check(lock.Path(storage.ConfigDir(ctx.Store)))
	if err != nil {
		return err
	}
	if holder != nil {
		return fmt.Errorf("a TUI session is running (pid %d); CLI changes are refused until it exits", holder.PID)
	}
	return nil
}

func checkClockTimezone(ctx *cli.Context) error {
	timezone := constants.DefaultTimezone
	if settings, err := ctx.Store.GetSettings(); err == nil && settings.Timezone != "" {
		timezone = settings.Timezone
	}
	now, err := utils.NowInTimezone(timezone)
	if err != nil {
		return err
	}

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	return nil
}
