package settings

import (
	"fmt"
	"slices"
	"strings"

	"github.com/julianstephens/nila/internal/cli"
	"github.com/julianstephens/nila/internal/models"
	"github.com/julianstephens/nila/internal/storage"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Change a setting."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := ctx.Stdout()
	fmt.Fprintln(out, "Current Settings:")
	fmt.Fprintf(out, "  Timezone:       %s\n", settings.Timezone)
	fmt.Fprintf(out, "  Share Dir:      %s\n", storage.ShareDir(ctx.Store, settings))
	fmt.Fprintf(out, "  Pixel Density:  %g\n", settings.PixelDensity)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting name (timezone, share_dir, pixel_density)."`
	Value string `arg:"" help:"New value."`
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	if err := models.ValidateSetting(c.Key, c.Value); err != nil {
		if !slices.Contains(Keys(), c.Key) {
			return fmt.Errorf("%w (valid keys: %s)", err, strings.Join(Keys(), ", "))
		}
		return err
	}
	if err := ctx.RequireNoLiveTUI(); err != nil {
		return err
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	data := models.SettingsToMap(settings)
	data[c.Key] = c.Value
	updated, err := models.MapToSettings(data)
	if err != nil {
		return err
	}
	models.ApplyDefaultSettings(&updated)

	if err := ctx.Store.SaveSettings(updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Fprintf(ctx.Stdout(), "Set %s = %s\n", c.Key, c.Value)
	return nil
}

// Keys returns the setting names accepted by set.
func Keys() []string {
	keys := make([]string, 0, 3)
	for k := range models.SettingsToMap(models.Settings{}) {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
