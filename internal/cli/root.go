package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/nila/internal/app"
	"github.com/julianstephens/nila/internal/backup"
	"github.com/julianstephens/nila/internal/lock"
	"github.com/julianstephens/nila/internal/logger"
	"github.com/julianstephens/nila/internal/share"
	"github.com/julianstephens/nila/internal/storage"
	"github.com/julianstephens/nila/internal/storage/sqlite"
)

type Context struct {
	Store storage.Provider
	// Phrases is the deck; nil means the built-in phrases.
	Phrases []string
	Debug   bool
	// Now defaults to time.Now.
	Now func() time.Time
	// Out receives command output; nil means stdout.
	Out io.Writer
}

// Stdout returns the writer commands print to.
func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

// OpenStore returns the provider for a config path: a JSON store for a
// .json path, SQLite otherwise.
func OpenStore(path string) storage.Provider {
	if storage.IsJSONPath(path) {
		return storage.NewJSONStore(path)
	}
	return sqlite.NewStore(path)
}

// LoadPhrases reads one phrase per non-blank line of path.
func LoadPhrases(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open phrase file: %w", err)
	}
	defer f.Close()

	var phrases []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			phrases = append(phrases, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read phrase file: %w", err)
	}
	if len(phrases) == 0 {
		return nil, fmt.Errorf("phrase file %s has no phrases", path)
	}
	return phrases, nil
}

// StateOptions returns the app options for the loaded store: its settings,
// the card renderer and an exporter for the configured share directory.
func (c *Context) StateOptions() (app.Options, error) {
	settings, err := c.Store.GetSettings()
	if err != nil {
		return app.Options{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return app.Options{
		Backend:  c.Store,
		Phrases:  c.Phrases,
		Settings: settings,
		Now:      c.Now,
		Renderer: share.NewCardRenderer(),
		Exporter: share.NewExporter(storage.ShareDir(c.Store, settings), true),
	}, nil
}

// NewState builds the application state over the loaded store.
func (c *Context) NewState() (*app.State, error) {
	opts, err := c.StateOptions()
	if err != nil {
		return nil, err
	}
	return app.New(opts)
}

// RequireNoLiveTUI refuses to continue while a TUI session holds the lock,
// since its in-memory state would overwrite this command's writes.
func (c *Context) RequireNoLiveTUI() error {
	holder, err := lock.Check(lock.Path(storage.ConfigDir(c.Store)))
	if err != nil {
		return err
	}
	if holder != nil {
		return fmt.Errorf("%w (pid %d): quit the TUI first", lock.ErrLocked, holder.PID)
	}
	return nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	_, err := mgr.CreateBackup()
	if err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// ParseIndex converts a 1-based phrase number to a deck index in [0, n).
func ParseIndex(arg string, n int) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid phrase number %q", arg)
	}
	if i < 1 || i > n {
		return 0, fmt.Errorf("phrase number %d out of range (1-%d)", i, n)
	}
	return i - 1, nil
}
