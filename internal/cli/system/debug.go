package system

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"

	"github.com/julianstephens/nila/internal/cli"
	"github.com/julianstephens/nila/internal/models"
)

type DebugCmd struct {
	DBPath *DebugDBPathCmd `cmd:"" help:"Show database path."`
	Dump   *DebugDumpCmd   `cmd:"" help:"Dump settings and saved values as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return writeJSON(ctx, map[string]string{
		"path": ctx.Store.GetConfigPath(),
	})
}

type DebugDumpCmd struct{}

type dump struct {
	Path     string                     `json:"path"`
	Settings map[string]string          `json:"settings"`
	Values   map[string]json.RawMessage `json:"values"`
}

func (cmd *DebugDumpCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	values, err := ctx.Store.GetAllValues()
	if err != nil {
		return fmt.Errorf("failed to get values: %w", err)
	}

	d := dump{
		Path:     ctx.Store.GetConfigPath(),
		Settings: models.SettingsToMap(settings),
		Values:   make(map[string]json.RawMessage, len(values)),
	}
	for k, v := range values {
		d.Values[k] = rawValue(v)
	}
	return writeJSON(ctx, d)
}

// rawValue embeds JSON values as-is and quotes everything else.
func rawValue(v []byte) json.RawMessage {
	if json.Valid(v) {
		return v
	}
	if !utf8.Valid(v) {
		v = []byte(fmt.Sprintf("%x", v))
	}
	quoted, _ := json.Marshal(string(v))
	return quoted
}

func writeJSON(ctx *cli.Context, v any) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Fprintln(ctx.Stdout(), string(jsonBytes))
	return nil
}
