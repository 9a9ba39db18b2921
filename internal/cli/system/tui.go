package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/nila/internal/cli"
	"github.com/julianstephens/nila/internal/lock"
	"github.com/julianstephens/nila/internal/logger"
	"github.com/julianstephens/nila/internal/storage"
	"github.com/julianstephens/nila/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	l, err := lock.Acquire(storage.ConfigDir(ctx.Store))
	if err != nil {
		return err
	}
	defer func() {
		if err := l.Release(); err != nil {
			logger.Warn("Failed to release lock", "error", err)
		}
	}()

	// Perform automatic backup on TUI startup (after successful load)
	ctx.PerformAutomaticBackup()

	st, err := ctx.NewState()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(st), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("alas, there's been an error: %w", err)
	}
	return nil
}
