package share

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"

	"github.com/julianstephens/nila/internal/constants"
	"github.com/julianstephens/nila/internal/logger"
)

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// Exporter delivers a payload to the terminal share boundary.
type Exporter struct {
	// Dir receives card images. Empty disables image export.
	Dir string
	// Clipboard enables copying the payload text.
	Clipboard bool

	now func() time.Time
}

// NewExporter returns an exporter writing cards to dir.
func NewExporter(dir string, useClipboard bool) *Exporter {
	return &Exporter{Dir: dir, Clipboard: useClipboard, now: time.Now}
}

// Result records what the share boundary managed to do.
type Result struct {
	Copied bool
	Path   string
}

// Message is the toast text describing the result.
func (r Result) Message() string {
	switch {
	case r.Path != "":
		return fmt.Sprintf(constants.MsgShareSaved, r.Path)
	case r.Copied:
		return constants.MsgShareCopied
	default:
		return constants.MsgShareUnavailable
	}
}

// Export copies the payload text and writes its image. Each step fails
// independently; failures are logged and reflected only in the Result.
func (e *Exporter) Export(p Payload) Result {
	var res Result

	if e.Clipboard {
		if err := clipboardWriteAll(p.Text()); err != nil {
			logger.Debug("Clipboard unavailable", "error", err)
		} else {
			res.Copied = true
		}
	}

	if img, ok := p.Image(); ok && e.Dir != "" {
		path, err := e.writeImage(img)
		if err != nil {
			logger.Warn("Failed to save share card", "dir", e.Dir, "error", err)
		} else {
			res.Path = path
		}
	}

	logger.Info("Shared phrase", "copied", res.Copied, "path", res.Path)
	return res
}

func (e *Exporter) writeImage(img []byte) (string, error) {
	if err := os.MkdirAll(e.Dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create share directory: %w", err)
	}
	now := time.Now
	if e.now != nil {
		now = e.now
	}
	name := fmt.Sprintf("%s%s-%s%s",
		constants.ShareFilePrefix,
		now().Format("20060102-150405"),
		uuid.NewString()[:8],
		constants.ShareFileSuffix,
	)
	path := filepath.Join(e.Dir, name)
	if err := os.WriteFile(path, img, 0644); err != nil {
		return "", fmt.Errorf("failed to write card: %w", err)
	}
	return path, nil
}
