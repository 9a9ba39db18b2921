// Package lock keeps two interactive nila sessions from writing the same
// database. The lock file holds "pid|session|executable"; a lock whose
// process is gone, or whose pid now belongs to another program, is stale.
package lock

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/logger"
)

var (
	findProcessFunc = ps.FindProcess
	getpidFunc      = os.Getpid
)

// ErrLocked is returned when a live session already holds the lock.
var ErrLocked = errors.New("another nila session is running")

// Holder describes the session recorded in a lock file.
type Holder struct {
	PID        int
	Session    string
	Executable string
}

// Lock is a lock file held by this process.
type Lock struct {
	path   string
	holder Holder
}

// Path returns the lock file location inside configDir.
func Path(configDir string) string {
	return filepath.Join(configDir, constants.LockfileName)
}

// Read parses the lock file at path.
func Read(path string) (Holder, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Holder{}, err
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return Holder{}, errors.New("lockfile is malformed")
	}

	pid, err := strconv.Atoi(parts[0])
	if err != nil || pid <= 0 {
		return Holder{}, errors.New("invalid process ID in lockfile")
	}
	if strings.TrimSpace(parts[1]) == "" {
		return Holder{}, errors.New("session in lockfile is empty")
	}
	if strings.TrimSpace(parts[2]) == "" {
		return Holder{}, errors.New("executable in lockfile is empty")
	}

	return Holder{PID: pid, Session: parts[1], Executable: parts[2]}, nil
}

// Check returns the live holder of the lock at path, or nil when the lock
// is absent, malformed or stale.
func Check(path string) (*Holder, error) {
	h, err := Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		logger.Debug("Ignoring unreadable lockfile", "path", path, "error", err)
		return nil, nil
	}
	if !alive(h) {
		logger.Debug("Lockfile is stale", "path", path, "pid", h.PID)
		return nil, nil
	}
	return &h, nil
}

func alive(h Holder) bool {
	process, err := findProcessFunc(h.PID)
	if err != nil || process == nil {
		return false
	}
	return process.Executable() == h.Executable
}

// Acquire takes the lock in configDir, replacing a stale lock file.
func Acquire(configDir string) (*Lock, error) {
	path := Path(configDir)

	holder, err := Check(path)
	if err != nil {
		return nil, err
	}
	if holder != nil {
		return nil, fmt.Errorf("%w (pid %d)", ErrLocked, holder.PID)
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to remove stale lockfile: %w", err)
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	l := &Lock{
		path: path,
		holder: Holder{
			PID:        getpidFunc(),
			Session:    uuid.NewString(),
			Executable: selfExecutable(),
		},
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil, ErrLocked
		}
		return nil, fmt.Errorf("failed to create lockfile: %w", err)
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d|%s|%s", l.holder.PID, l.holder.Session, l.holder.Executable); err != nil {
		_ = os.Remove(path)
		return nil, fmt.Errorf("failed to write lockfile: %w", err)
	}

	logger.Debug("Acquired lock", "path", path, "session", l.holder.Session)
	return l, nil
}

// selfExecutable returns the name the process table reports for this
// process so later liveness checks compare like with like.
func selfExecutable() string {
	if p, err := findProcessFunc(getpidFunc()); err == nil && p != nil && p.Executable() != "" {
		return p.Executable()
	}
	return filepath.Base(os.Args[0])
}

// Holder returns the session this lock records.
func (l *Lock) Holder() Holder { return l.holder }

// Release removes the lock file if it still belongs to this session.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	h, err := Read(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if h.Session != l.holder.Session {
		return nil
	}
	if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove lockfile: %w", err)
	}
	return nil
}
