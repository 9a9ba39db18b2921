package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/nila/internal/cli"
	"github.com/julianstephens/nila/internal/cli/backups"
	"github.com/julianstephens/nila/internal/cli/favorites"
	"github.com/julianstephens/nila/internal/cli/phrases"
	"github.com/julianstephens/nila/internal/cli/profiles"
	"github.com/julianstephens/nila/internal/cli/settings"
	"github.com/julianstephens/nila/internal/cli/shares"
	"github.com/julianstephens/nila/internal/cli/streaks"
	"github.com/julianstephens/nila/internal/cli/system"
	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/errors"
	"github.com/julianstephens/nila/internal/logger"
	"github.com/julianstephens/nila/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Database path. A .json suffix selects the JSON store." type:"string" default:"${default_config}" env:"${config_env}"`
	Debug   bool   `help:"Log debug output to stderr and the log file."`
	Phrases string `help:"Phrase file, one phrase per line. Defaults to the built-in deck." type:"existingfile"`

	Init     system.InitCmd        `cmd:"" help:"Initialize nila storage."`
	Migrate  system.MigrateCmd     `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd      `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd         `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Phrase   phrases.PhraseCmd     `cmd:"" help:"Browse the affirmation deck."`
	Favorite favorites.FavoriteCmd `cmd:"" help:"Manage favorite phrases."`
	Streak   streaks.StreakCmd     `cmd:"" help:"Show or mark the weekly streak."`
	Profile  profiles.ProfileCmd   `cmd:"" help:"Show or edit your profile."`
	Share    shares.ShareCmd       `cmd:"" help:"Share a phrase as text and a card image."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	DebugCmd system.DebugCmd      `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal affirmations: a deck of phrases, favorites and a weekly streak"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":        constants.Version,
			"default_config": constants.DefaultConfigPath,
			"config_env":     constants.ConfigEnvVar,
		},
	)

	configPath, err := storage.ExpandPath(CLI.Config)
	if err != nil {
		errors.Fatal(err)
	}
	store := cli.OpenStore(configPath)

	command := ""
	if ctx.Selected() != nil {
		command = ctx.Selected().Name
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: storage.ConfigDir(store),
		Quiet:     command == "tui",
	}); err != nil {
		errors.Warn(os.Stderr, fmt.Errorf("failed to open log file: %w", err))
	}

	appCtx := &cli.Context{
		Store: store,
		Debug: CLI.Debug,
	}
	if CLI.Phrases != "" {
		appCtx.Phrases, err = cli.LoadPhrases(CLI.Phrases)
		if err != nil {
			errors.Fatal(err)
		}
	}

	// Init creates the store and doctor reports a missing one itself
	if command != "init" && command != "doctor" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}
	defer store.Close()

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}
